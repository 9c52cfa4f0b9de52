package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"supplier-portal/internal/store"
)

func newUserHandler(t *testing.T) *UserHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(store.Models()...))
	return NewUserHandler(store.NewAnnotationStore(db))
}

// doPOST runs a handler against a JSON POST request and decodes the envelope
func doPOST(t *testing.T, h echo.HandlerFunc, target, body string) (int, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestAddFavorite_ThenList(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doPOST(t, h.AddFavorite, "/api/user/favorites/add",
		`{"user_id": "alice", "supplier_id": 5}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])

	// Adding the same id again is a no-op
	code, _ = doPOST(t, h.AddFavorite, "/api/user/favorites/add",
		`{"user_id": "alice", "supplier_id": 5}`)
	require.Equal(t, http.StatusOK, code)

	code, envelope = doGET(t, h.GetFavorites, "/api/user/favorites?user_id=alice")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{float64(5)}, envelope["favorites"])
}

func TestRemoveFavorite_AbsentIsNoOp(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doPOST(t, h.RemoveFavorite, "/api/user/favorites/remove",
		`{"user_id": "alice", "supplier_id": 99}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])

	_, envelope = doGET(t, h.GetFavorites, "/api/user/favorites?user_id=alice")
	assert.Empty(t, envelope["favorites"])
}

func TestAddFavorite_MissingSupplierID(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doPOST(t, h.AddFavorite, "/api/user/favorites/add",
		`{"user_id": "alice"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["error"], "supplier_id")
}

func TestAddFavorite_MalformedBody(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doPOST(t, h.AddFavorite, "/api/user/favorites/add", "not json")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])
}

func TestAddFavorite_DefaultsToAnonymous(t *testing.T) {
	h := newUserHandler(t)

	code, _ := doPOST(t, h.AddFavorite, "/api/user/favorites/add",
		`{"supplier_id": 7}`)
	require.Equal(t, http.StatusOK, code)

	_, envelope := doGET(t, h.GetFavorites, "/api/user/favorites")
	assert.Equal(t, []interface{}{float64(7)}, envelope["favorites"])
}

func TestSaveNote_Overwrites(t *testing.T) {
	h := newUserHandler(t)

	code, _ := doPOST(t, h.SaveNote, "/api/user/notes/save",
		`{"user_id": "bob", "supplier_id": 12, "note_text": "follow up"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = doPOST(t, h.SaveNote, "/api/user/notes/save",
		`{"user_id": "bob", "supplier_id": 12, "note_text": "done"}`)
	require.Equal(t, http.StatusOK, code)

	code, envelope := doGET(t, h.GetNotes, "/api/user/notes?user_id=bob")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"12": "done"}, envelope["notes"])
}

func TestAddInboxMessage_SequenceAndUnread(t *testing.T) {
	h := newUserHandler(t)

	for _, msg := range []string{"hi", "hello again"} {
		code, _ := doPOST(t, h.AddInboxMessage, "/api/user/inbox/add",
			`{"user_id": "alice", "message": "`+msg+`"}`)
		require.Equal(t, http.StatusOK, code)
	}

	code, envelope := doGET(t, h.GetInbox, "/api/user/inbox?user_id=alice")
	assert.Equal(t, http.StatusOK, code)

	inbox := envelope["inbox"].([]interface{})
	require.Len(t, inbox, 2)
	first := inbox[0].(map[string]interface{})
	second := inbox[1].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "hi", first["message"])
	assert.Equal(t, false, first["read"])
	assert.NotEmpty(t, first["timestamp"])
	assert.Equal(t, float64(2), second["id"])
	assert.Equal(t, false, second["read"])
}

func TestAddInboxMessage_MissingMessage(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doPOST(t, h.AddInboxMessage, "/api/user/inbox/add",
		`{"user_id": "alice"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["error"], "message")
}

func TestGetProfile(t *testing.T) {
	h := newUserHandler(t)

	_, _ = doPOST(t, h.AddFavorite, "/api/user/favorites/add",
		`{"user_id": "carol", "supplier_id": 3}`)
	_, _ = doPOST(t, h.SaveNote, "/api/user/notes/save",
		`{"user_id": "carol", "supplier_id": 3, "note_text": "check pricing"}`)

	code, envelope := doGET(t, h.GetProfile, "/api/user/profile?user_id=carol")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])

	user := envelope["user"].(map[string]interface{})
	assert.Equal(t, []interface{}{float64(3)}, user["favorites"])
	assert.Equal(t, map[string]interface{}{"3": "check pricing"}, user["notes"])
	assert.Empty(t, user["inbox"])
	prefs := user["preferences"].(map[string]interface{})
	assert.Equal(t, "light", prefs["theme"])
}

func TestGetProfile_UnknownUser(t *testing.T) {
	h := newUserHandler(t)

	code, envelope := doGET(t, h.GetProfile, "/api/user/profile?user_id=stranger")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])

	user := envelope["user"].(map[string]interface{})
	assert.Empty(t, user["favorites"])
	assert.Empty(t, user["notes"])
	assert.Empty(t, user["inbox"])
}
