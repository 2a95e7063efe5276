package core

// Cue names a sound the audio collaborator should play.
type Cue string

const (
	CueShoot        Cue = "shoot"
	CueHit          Cue = "hit"
	CueExplosion    Cue = "explosion"
	CuePlayerHit    Cue = "player_hit"
	CueLevelUp      Cue = "level_up"
	CueGameOver     Cue = "game_over"
	CueSessionStart Cue = "session_start"
)

// AllCues lists every cue in a stable order.
func AllCues() []Cue {
	return []Cue{
		CueShoot,
		CueHit,
		CueExplosion,
		CuePlayerHit,
		CueLevelUp,
		CueGameOver,
		CueSessionStart,
	}
}
