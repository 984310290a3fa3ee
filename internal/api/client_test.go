package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/idilsaglam/notes/internal/model"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

type ClientTestSuite struct {
	suite.Suite
	last     *http.Request
	lastBody []byte
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// client answers every request with status/body and records what was sent.
func (s *ClientTestSuite) client(status int, body string) *Client {
	hc := &http.Client{Transport: RoundTripFunc(func(req *http.Request) *http.Response {
		s.last = req
		s.lastBody = nil
		if req.Body != nil {
			s.lastBody, _ = io.ReadAll(req.Body)
		}
		return response(status, body)
	})}
	return New("http://test.notes/api", 0, zerolog.Nop()).SetHTTPClient(hc)
}

func (s *ClientTestSuite) TestListNotes_Filter() {
	c := s.client(200, `[{"id": 1, "title": "a", "status": "archived", "labels": ["x y"]}]`)

	notes, err := c.ListNotes(context.Background(), NoteFilter{Status: model.StatusArchived, Label: "x y"})
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal(model.StatusArchived, notes[0].Status)

	s.Equal(http.MethodGet, s.last.Method)
	s.Equal("/api/notes", s.last.URL.Path)
	s.Equal("archived", s.last.URL.Query().Get("status"))
	s.Equal("x y", s.last.URL.Query().Get("label"))
	s.Equal("application/json", s.last.Header.Get("Accept"))
	s.NotEmpty(s.last.Header.Get("X-Request-ID"))
}

func (s *ClientTestSuite) TestListNotes_NoFilterNoQuery() {
	c := s.client(200, `[]`)
	notes, err := c.ListNotes(context.Background(), NoteFilter{})
	s.Require().NoError(err)
	s.Empty(notes)
	s.Equal("", s.last.URL.RawQuery)
}

func (s *ClientTestSuite) TestBearerToken() {
	c := s.client(200, `[]`)
	_, err := c.ListLabels(context.Background())
	s.Require().NoError(err)
	s.Empty(s.last.Header.Get("Authorization"))

	c.SetToken("abc")
	_, err = c.ListLabels(context.Background())
	s.Require().NoError(err)
	s.Equal("Bearer abc", s.last.Header.Get("Authorization"))
}

func (s *ClientTestSuite) TestGetNote_EscapesID() {
	c := s.client(200, `{"id": "a/b", "title": "t"}`)
	n, err := c.GetNote(context.Background(), "a/b")
	s.Require().NoError(err)
	s.Equal(model.ID("a/b"), n.ID)
	s.Equal("/api/notes/a%2Fb", s.last.URL.EscapedPath())
}

func (s *ClientTestSuite) TestCreateNote() {
	c := s.client(201, `{"id": 3, "title": "t", "content": "c", "labels": ["Work"]}`)
	n, err := c.CreateNote(context.Background(), NoteInput{Title: "t", Content: "c", Labels: []string{"Work"}})
	s.Require().NoError(err)
	s.Equal(model.ID("3"), n.ID)

	s.Equal(http.MethodPost, s.last.Method)
	s.Equal("application/json", s.last.Header.Get("Content-Type"))
	s.JSONEq(`{"title": "t", "content": "c", "labels": ["Work"]}`, string(s.lastBody))
}

func (s *ClientTestSuite) TestCreateNote_OmitsNilLabels() {
	c := s.client(201, `{"id": 3, "title": "t"}`)
	_, err := c.CreateNote(context.Background(), NoteInput{Title: "t"})
	s.Require().NoError(err)
	s.JSONEq(`{"title": "t", "content": ""}`, string(s.lastBody))
}

func (s *ClientTestSuite) TestCreateNote_RequiresCreated() {
	c := s.client(200, `{"id": 3, "title": "t"}`)
	_, err := c.CreateNote(context.Background(), NoteInput{Title: "t"})
	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(200, apiErr.StatusCode)
}

func (s *ClientTestSuite) TestCreateNote_ServerMessage() {
	c := s.client(500, `{"error": "db down"}`)
	_, err := c.CreateNote(context.Background(), NoteInput{Title: "t"})
	var apiErr *Error
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(500, apiErr.StatusCode)
	s.Equal("db down", apiErr.Message)
	s.Equal("db down", err.Error())
}

func (s *ClientTestSuite) TestError_GenericWithoutMessage() {
	c := s.client(502, `<html>bad gateway</html>`)
	_, err := c.ListLabels(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "status 502")
}

func (s *ClientTestSuite) TestUpdateNote_SendsOnlySetFields() {
	c := s.client(200, `{"id": 1, "title": "t", "status": "completed"}`)
	st := model.StatusCompleted
	_, err := c.UpdateNote(context.Background(), "1", NoteUpdate{Status: &st})
	s.Require().NoError(err)
	s.Equal(http.MethodPut, s.last.Method)
	s.Equal("/api/notes/1", s.last.URL.Path)
	s.JSONEq(`{"status": "completed"}`, string(s.lastBody))
}

func (s *ClientTestSuite) TestUpdateNote_EmptyLabelsAreSent() {
	c := s.client(200, `{"id": 1, "title": "t"}`)
	labels := []string{}
	_, err := c.UpdateNote(context.Background(), "1", NoteUpdate{Labels: &labels})
	s.Require().NoError(err)
	s.JSONEq(`{"labels": []}`, string(s.lastBody))
}

func (s *ClientTestSuite) TestDeleteNote() {
	for _, code := range []int{200, 204} {
		c := s.client(code, ``)
		s.Require().NoError(c.DeleteNote(context.Background(), "9"))
		s.Equal(http.MethodDelete, s.last.Method)
	}
	c := s.client(404, `{"error": "Note not found"}`)
	err := c.DeleteNote(context.Background(), "9")
	s.True(IsNotFound(err))
}

func (s *ClientTestSuite) TestCreateLabel() {
	for _, code := range []int{200, 201} {
		c := s.client(code, `{"id": 5, "name": "Urgent", "color": "#e67e22"}`)
		l, err := c.CreateLabel(context.Background(), "urgent", "")
		s.Require().NoError(err)
		s.Equal("Urgent", l.Name)
		s.JSONEq(`{"name": "urgent"}`, string(s.lastBody))
	}
}

func (s *ClientTestSuite) TestDeleteLabel() {
	c := s.client(204, ``)
	s.Require().NoError(c.DeleteLabel(context.Background(), "5"))
	s.Equal("/api/labels/5", s.last.URL.Path)
}

func (s *ClientTestSuite) TestMalformedPayload() {
	c := s.client(200, `[{"id": 1}]`)
	_, err := c.ListNotes(context.Background(), NoteFilter{})
	var de *model.DecodeError
	s.Require().ErrorAs(err, &de)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", 0, zerolog.Nop())
	assert.NoError(t, c.Health(context.Background()))
}

func TestHealth_AnySuccessStatus(t *testing.T) {
	for _, code := range []int{200, 201, 203, 204, 206} {
		hc := &http.Client{Transport: RoundTripFunc(func(req *http.Request) *http.Response {
			return response(code, ``)
		})}
		c := New("http://test.notes/api", 0, zerolog.Nop()).SetHTTPClient(hc)
		assert.NoError(t, c.Health(context.Background()), "status %d", code)
	}

	hc := &http.Client{Transport: RoundTripFunc(func(req *http.Request) *http.Response {
		return response(503, `{"error":"starting"}`)
	})}
	c := New("http://test.notes/api", 0, zerolog.Nop()).SetHTTPClient(hc)
	var apiErr *Error
	require.ErrorAs(t, c.Health(context.Background()), &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url+"/api", 0, zerolog.Nop())
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestRequestsAreLoggedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	hc := &http.Client{Transport: RoundTripFunc(func(req *http.Request) *http.Response {
		return response(200, `[]`)
	})}
	c := New("http://test.notes/api", 0, log).SetHTTPClient(hc)

	_, err := c.ListLabels(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"path":"/labels"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"request_id"`)
}
