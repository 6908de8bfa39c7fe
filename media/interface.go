// Package media implements the "media" capability: things that can play.
package media

// Player is the capability of playing a piece of media.
type Player interface {
	Play()
}

// MakePlay invokes the play capability through its contract.
func MakePlay(p Player) {
	p.Play()
}
