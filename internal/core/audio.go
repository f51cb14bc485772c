package core

// Sound names a cue the simulation asks the audio collaborator to play.
type Sound string

const (
	SoundTrack      Sound = "track"      // looping background track, started per round
	SoundShipShoot  Sound = "shipshoot"  // player fired a bolt
	SoundAlienBlast Sound = "alienblast" // an alien was destroyed
	SoundPlayerLose Sound = "playerlose" // the ship was hit
	SoundWin        Sound = "win"        // the formation was cleared
)

// Audio is the fire-and-forget sound capability consumed by the simulation.
type Audio interface {
	PlaySound(s Sound)
	StopTrack()
}

// NopAudio discards every request.
type NopAudio struct{}

// PlaySound implements Audio.
func (NopAudio) PlaySound(Sound) {}

// StopTrack implements Audio.
func (NopAudio) StopTrack() {}
