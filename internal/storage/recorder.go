package storage

import "github.com/google/uuid"

// Recorder hands final scores from one play session to a Store.
// It satisfies core.ScoreRecorder.
type Recorder struct {
	store   *Store
	session string
}

// NewRecorder binds a fresh session id to store.
func NewRecorder(store *Store) *Recorder {
	return NewSessionRecorder(store, uuid.NewString())
}

// NewSessionRecorder binds an existing session id, e.g. one assigned to an
// SSH connection.
func NewSessionRecorder(store *Store, session string) *Recorder {
	return &Recorder{store: store, session: session}
}

// Session returns the bound session id.
func (r *Recorder) Session() string {
	return r.session
}

// RecordScore saves a final score.
func (r *Recorder) RecordScore(gameID string, score int) error {
	_, err := r.store.SaveSessionScore(gameID, r.session, score)
	return err
}

// Rank places a just-recorded score in the ranked list.
func (r *Recorder) Rank(gameID string, score int) (int, error) {
	return r.store.Rank(gameID, score)
}
