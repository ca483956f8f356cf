package event

import (
	"crewcast/domain"
	"crewcast/errors"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGossip_Chat(t *testing.T) {
	req := require.New(t)

	// Given a chat payload
	payload := []byte(`{"type":"chat","sender":"node-a","content":"hello"}`)

	// When it is parsed
	evt, err := ParseGossip(payload)

	// Then a chat event is returned
	req.NoError(err)
	req.Equal(ChatReceived{Sender: "node-a", Content: "hello"}, evt)
	req.Equal(ChatType, evt.EventType())
}

func TestParseGossip_UnwrapsStringEncodedPayload(t *testing.T) {
	req := require.New(t)

	// Given a payload emitted as a JSON string holding the document
	inner := `{"type":"chat","sender":"node-a","content":"hi"}`
	payload, err := json.Marshal(inner)
	req.NoError(err)

	evt, err := ParseGossip(payload)

	req.NoError(err)
	req.Equal(ChatReceived{Sender: "node-a", Content: "hi"}, evt)
}

func TestParseGossip_CheckInMetaVariants(t *testing.T) {
	req := require.New(t)

	snake := []byte(`{"type":"check_in","sender":"node-b","meta":{"email":"b@x.io","first_name":"Bob","last_name":"Stone"}}`)
	camel := []byte(`{"type":"check_in","sender":"node-b","meta":{"firstName":"Bob","lastName":"Stone"}}`)

	evt, err := ParseGossip(snake)
	req.NoError(err)
	req.Equal(CheckedIn{Sender: "node-b", Meta: domain.MemberMeta{Email: "b@x.io", FirstName: "Bob", LastName: "Stone"}}, evt)

	evt, err = ParseGossip(camel)
	req.NoError(err)
	req.Equal("Bob", evt.(CheckedIn).Meta.FirstName)
	req.Equal("Stone", evt.(CheckedIn).Meta.LastName)
}

func TestParseGossip_FileFlatAndNested(t *testing.T) {
	req := require.New(t)

	flat := []byte(`{"type":"file","sender":"node-c","fileName":"a.pdf","blobTicket":"blob1","hash":"h1","size":42,"ts":1700}`)
	evt, err := ParseGossip(flat)
	req.NoError(err)
	announced := evt.(FileAnnounced)
	req.Equal("node-c", announced.Sender)
	req.Equal("a.pdf", announced.FileName)
	req.Equal(int64(42), announced.SizeBytes)
	req.Equal(int64(1700), announced.SharedAt)
	req.Nil(announced.File)

	nested := []byte(`{"type":"file","file":{"id":3,"nodeId":"node-c","topicId":"t1","hash":"h2","name":"b.png","format":"image/png","size":7,"status":"Shared","sharedAt":1800}}`)
	evt, err = ParseGossip(nested)
	req.NoError(err)
	announced = evt.(FileAnnounced)
	req.Equal("node-c", announced.Sender)
	req.Equal("b.png", announced.FileName)
	req.NotNil(announced.File)
	req.Equal(domain.StatusAnnounced, announced.File.Status)
	req.Equal(int64(3), announced.File.ID)
}

func TestParseGossip_NewMember(t *testing.T) {
	req := require.New(t)

	evt, err := ParseGossip([]byte(`{"type":"new_member","sender":"node-d"}`))
	req.NoError(err)
	req.Equal(MemberJoined{Sender: "node-d"}, evt)
}

func TestParseGossip_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{"not json", `{{`, errors.ErrMalformedEvent},
		{"bad string wrapper", `"{\"type\":`, errors.ErrMalformedEvent},
		{"unknown type", `{"type":"reaction","sender":"n"}`, errors.ErrUnknownEventType},
		{"chat without content", `{"type":"chat","sender":"n"}`, errors.ErrMalformedEvent},
		{"check_in without meta", `{"type":"check_in","sender":"n"}`, errors.ErrMalformedEvent},
		{"file without name", `{"type":"file","sender":"n"}`, errors.ErrMalformedEvent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGossip([]byte(tc.payload))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseProgress(t *testing.T) {
	req := require.New(t)

	progress, err := ParseProgress([]byte(`{"percentage":30.5,"fileName":"a.pdf","downloaded":30,"total":100}`))
	req.NoError(err)
	req.True(progress.HasPercentage)
	req.Equal(30.5, progress.Percentage)
	req.False(progress.Done())

	progress, err = ParseProgress([]byte(`{"percentage":100,"fileName":"a.pdf","complete":true}`))
	req.NoError(err)
	req.True(progress.Done())

	progress, err = ParseProgress([]byte(`{"error":"provider unreachable","fileName":"a.pdf"}`))
	req.NoError(err)
	req.False(progress.HasPercentage)
	req.Equal("provider unreachable", progress.Error)

	_, err = ParseProgress([]byte(`{"percentage":10}`))
	req.ErrorIs(err, errors.ErrMalformedEvent)
}

func TestEncodeThenParse(t *testing.T) {
	req := require.New(t)

	payload, err := EncodeCheckIn("node-e", domain.MemberMeta{Email: "e@x.io", FirstName: "Eve"})
	req.NoError(err)

	evt, err := Parse(GossipStream, payload)
	req.NoError(err)
	req.Equal("Eve", evt.(CheckedIn).Meta.FirstName)

	payload, err = EncodeProgress(DownloadProgress{FileName: "f", Percentage: 100, HasPercentage: true, Complete: true})
	req.NoError(err)
	evt, err = Parse(ProgressStream, payload)
	req.NoError(err)
	req.True(evt.(DownloadProgress).Done())
}
