// Package model provides the in-memory representation of a posture tool
// template.
//
// A [Template] is what the loader produces from a tool document. It is built
// once and then handed to the caller, who treats it as read-only.
//
// # Points
//
// [Template.Points] is a fixed-size slice. A point's index is its identity:
// segments, ellipses, angles, handles and hit zones all refer to points by
// index, never by value.
//
// # Elements
//
//   - [Segment] - a line between two points
//   - [Ellipse] - a circle from a center point and a point on its edge
//   - [Angle] - an angle at an origin between two legs
//   - [Handle] - a draggable control, optionally with a [Constraint] and [Impact] list
//   - [HitZone] - a region used for hit-testing; [Polygon] is the only shape so far
//
// All element slices keep document order, which is also the drawing order.
//
// # Geometry
//
//   - [Point] - 2D point with distance calculation
//   - [BBox] - bounding box with union and containment
package model
