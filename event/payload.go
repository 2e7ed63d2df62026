package event

import (
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

// BoatMovePayload carries the boat state after a move
type BoatMovePayload struct {
	Jump        vmath.Vec3F  `json:"jump"`
	Translation vmath.Vec3F  `json:"translation"`
	Speed       float64      `json:"speed"`
	Heading     float64      `json:"heading"`
	Fix         sky.GlobeFix `json:"fix"`
	Mode        string       `json:"mode"`
}

// IslandEnterPayload carries the island and its materialized landing
type IslandEnterPayload struct {
	Island   sky.IslandID `json:"island"`
	Rotation vmath.Quat   `json:"rotation"`
	Landing  vmath.Vec3F  `json:"landing"`
	Position vmath.Vec3F  `json:"position"`
	Fix      sky.GlobeFix `json:"fix"`
}

// IslandApproachPayload carries approach progress
type IslandApproachPayload struct {
	Island   sky.IslandID `json:"island"`
	Fraction float64      `json:"fraction"`
	Darkness float64      `json:"darkness"`
	Locked   bool         `json:"locked"`
}

// IslandLeavePayload carries the island left behind
type IslandLeavePayload struct {
	Island   sky.IslandID `json:"island"`
	Position vmath.Vec3F  `json:"position"`
	Fix      sky.GlobeFix `json:"fix"`
}

// ModeChangePayload carries a committed day phase transition
type ModeChangePayload struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Island   sky.IslandID `json:"island,omitempty"`
	Position vmath.Vec3F  `json:"position"`
	Fix      sky.GlobeFix `json:"fix"`
}
