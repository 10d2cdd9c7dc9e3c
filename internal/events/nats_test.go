package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMsg struct {
	subject string
	data    []byte
}

type fakeConn struct {
	msgs   []recordedMsg
	err    error
	closed bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, recordedMsg{subject: subject, data: data})
	return nil
}

func (f *fakeConn) Close() { f.closed = true }

func TestNATSPublisher_PublishPostLiked(t *testing.T) {
	fc := &fakeConn{}
	p := &NATSPublisher{conn: fc}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := p.PublishPostLiked(context.Background(), PostLikedEvent{
		PostID: "p1", AuthorID: "a1", UserID: "u1", UserName: "Ann", NoOfLikes: 3, LikedAt: now,
	})
	require.NoError(t, err)
	require.Len(t, fc.msgs, 1)
	assert.Equal(t, SubjectPostLiked, fc.msgs[0].subject)

	var got PostLikedEvent
	require.NoError(t, json.Unmarshal(fc.msgs[0].data, &got))
	assert.Equal(t, "p1", got.PostID)
	assert.Equal(t, 3, got.NoOfLikes)
	assert.True(t, now.Equal(got.LikedAt))
}

func TestNATSPublisher_PublishCommentAdded(t *testing.T) {
	fc := &fakeConn{}
	p := &NATSPublisher{conn: fc}

	err := p.PublishCommentAdded(context.Background(), CommentAddedEvent{PostID: "p1", CommentID: "c1", Content: "nice"})
	require.NoError(t, err)
	require.Len(t, fc.msgs, 1)
	assert.Equal(t, SubjectCommentAdded, fc.msgs[0].subject)
	assert.Contains(t, string(fc.msgs[0].data), `"comment_id":"c1"`)
}

func TestNATSPublisher_PublishError(t *testing.T) {
	p := &NATSPublisher{conn: &fakeConn{err: errors.New("nats: connection closed")}}

	err := p.PublishPostLiked(context.Background(), PostLikedEvent{PostID: "p1"})
	assert.ErrorContains(t, err, SubjectPostLiked)
}

func TestNATSPublisher_Close(t *testing.T) {
	fc := &fakeConn{}
	(&NATSPublisher{conn: fc}).Close()
	assert.True(t, fc.closed)
}

func TestNewPublisher_EmptyURLIsNoop(t *testing.T) {
	p, err := NewPublisher("")
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishPostLiked(context.Background(), PostLikedEvent{}))
	assert.NoError(t, p.PublishCommentAdded(context.Background(), CommentAddedEvent{}))
	p.Close()
}
