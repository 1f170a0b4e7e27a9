package scene

import "github.com/Faultbox/earthglobe/pkg/math"

// Node is a scene object rotated about its own origin.
type Node struct {
	RotX float32 // Pitch, radians
	RotY float32 // Yaw, radians
}

// SetRotation assigns both Euler angles.
func (n *Node) SetRotation(x, y float32) {
	n.RotX = x
	n.RotY = y
}

// Model returns the node's model matrix.
func (n *Node) Model() math.Mat4 {
	return math.EulerXY(n.RotX, n.RotY)
}
