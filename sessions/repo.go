package sessions

type Repo interface {
	Upsert(session *Session) error
	Get(sessionID string) (*Session, error)
	Delete(sessionID string) error
}
