package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tidwall/buntdb"

	"content_variation_generator/generator"
)

var errSessionNotFound = errors.New("session not found")

// sessionStore keeps sessions in an in-memory buntdb so every mutation runs
// inside one write transaction and idle sessions expire on their own.
type sessionStore struct {
	db  *buntdb.DB
	ttl time.Duration
}

func newStore(ttl time.Duration) (*sessionStore, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}
	return &sessionStore{db: db, ttl: ttl}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *sessionStore) create(sess *generator.Session) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		return s.put(tx, sess)
	})
}

func (s *sessionStore) get(id string) (*generator.Session, error) {
	var sess *generator.Session
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		sess, err = load(tx, id)
		return err
	})
	return sess, err
}

// update applies fn to the stored session and writes it back. If fn fails
// nothing is written. Each update refreshes the idle TTL.
func (s *sessionStore) update(id string, fn func(*generator.Session) error) (*generator.Session, error) {
	var sess *generator.Session
	err := s.db.Update(func(tx *buntdb.Tx) error {
		var err error
		sess, err = load(tx, id)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}
		return s.put(tx, sess)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionStore) close() error {
	return s.db.Close()
}

func (s *sessionStore) put(tx *buntdb.Tx, sess *generator.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(sessionKey(sess.ID), string(data), &buntdb.SetOptions{Expires: true, TTL: s.ttl})
	return err
}

func load(tx *buntdb.Tx, id string) (*generator.Session, error) {
	val, err := tx.Get(sessionKey(id))
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, errSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess generator.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
