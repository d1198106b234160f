// Command posture inspects Kinovea posture tool documents.
package main

func main() {
	Execute()
}
