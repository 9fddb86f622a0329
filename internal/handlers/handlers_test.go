package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/audit"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/models"
	"github.com/salalivre/room-scheduler/internal/session"
	"github.com/salalivre/room-scheduler/internal/token"
)

type captureSink struct {
	events []audit.Event
}

func (s *captureSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.SetupJoinTable(&models.Room{}, "TimeBlocks", &models.RoomTimeBlock{}); err != nil {
		t.Fatalf("join table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.TimeBlock{},
		&models.Room{},
		&models.RoomTimeBlock{},
		&models.Appointment{},
		&models.Log{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *token.Manager, *captureSink) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	tokens := token.NewManager("test-secret")
	sink := &captureSink{}

	authHandler := NewAuthHandler(db, tokens, session.NoopRevoker{}, sink)
	userHandler := NewUserHandler(db, tokens, sink, time.UTC)
	roomHandler := NewRoomHandler(db, sink)

	auth := middleware.AuthMiddleware(tokens, session.NoopRevoker{})
	adminOnly := middleware.RequireAdmin()

	r := gin.New()
	r.POST("/login", authHandler.Login)
	r.POST("/user", userHandler.Register)
	r.POST("/room", auth, adminOnly, roomHandler.Upsert)
	r.PUT("/user/:id/permission", auth, adminOnly, userHandler.Permissions)

	return r, db, tokens, sink
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func registerPayload(name, email string) map[string]any {
	return map[string]any{
		"name":      name,
		"last_name": "Silva",
		"email":     email,
		"password":  "secret123",
		"zip_code":  "01310-100",
	}
}

// ---------------------------------------------------
// Register
// ---------------------------------------------------

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/user", registerPayload("Ana", "ana@example.com"), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/user", registerPayload("Outra", "ana@example.com"), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email_already_registered") {
		t.Errorf("body = %s, want email_already_registered", rec.Body.String())
	}

	// A linha original permanece intacta e única.
	var count int64
	db.Model(&models.User{}).Where("email = ?", "ana@example.com").Count(&count)
	if count != 1 {
		t.Errorf("users with email = %d, want 1", count)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "ana@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Name != "Ana" {
		t.Errorf("Name = %q, want Ana", user.Name)
	}
}

// ---------------------------------------------------
// Login
// ---------------------------------------------------

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := models.User{
		Name:         "Ana",
		LastName:     "Silva",
		Email:        email,
		PasswordHash: string(hash),
		Status:       active,

		PermissionLogs:         true,
		PermissionAppointments: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func sessionCookieSet(rec *httptest.ResponseRecorder) bool {
	for _, sc := range rec.Header().Values("Set-Cookie") {
		if strings.HasPrefix(sc, middleware.SessionCookie+"=") {
			return true
		}
	}
	return false
}

func TestLoginFailuresSetNoCookie(t *testing.T) {
	r, db, _, _ := newTestRouter(t)
	seedUser(t, db, "ana@example.com", "secret123", true)
	seedUser(t, db, "off@example.com", "secret123", false)

	cases := []struct {
		name     string
		email    string
		password string
		wantCode string
	}{
		{"unknown email", "ghost@example.com", "secret123", "user_not_found"},
		{"inactive account", "off@example.com", "secret123", "user_not_found"},
		{"wrong password", "ana@example.com", "nope", "incorrect_password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/login", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			}, "")

			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantCode) {
				t.Errorf("body = %s, want %s", rec.Body.String(), tc.wantCode)
			}
			if sessionCookieSet(rec) {
				t.Errorf("session cookie set on failed login: %v", rec.Header().Values("Set-Cookie"))
			}
		})
	}
}

func TestLoginSuccessSetsCookies(t *testing.T) {
	r, db, _, _ := newTestRouter(t)
	seedUser(t, db, "ana@example.com", "secret123", true)

	rec := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email":    "ana@example.com",
		"password": "secret123",
	}, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if !sessionCookieSet(rec) {
		t.Error("session cookie not set on login")
	}
}

// ---------------------------------------------------
// Room upsert
// ---------------------------------------------------

func seedTimeBlocks(t *testing.T, db *gorm.DB) []uint {
	t.Helper()

	var ids []uint
	for _, minutes := range []int{30, 60} {
		block := models.TimeBlock{Minutes: minutes}
		if err := db.Create(&block).Error; err != nil {
			t.Fatalf("seed time block: %v", err)
		}
		ids = append(ids, block.ID)
	}
	return ids
}

func TestRoomUpsertIdempotent(t *testing.T) {
	r, db, tokens, sink := newTestRouter(t)
	blockIDs := seedTimeBlocks(t, db)

	admin, err := tokens.Issue(1, true, token.Permissions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	payload := map[string]any{
		"name":        "Sala A",
		"start_time":  "08:00",
		"end_time":    "18:00",
		"time_blocks": blockIDs,
	}

	rec := doJSON(t, r, http.MethodPost, "/room", payload, admin)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first upsert: status = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/room", payload, admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("second upsert: status = %d, want 200", rec.Code)
	}

	// Continua uma sala só, com o mesmo conjunto de blocos.
	var roomCount int64
	db.Model(&models.Room{}).Where("name = ?", "Sala A").Count(&roomCount)
	if roomCount != 1 {
		t.Fatalf("rooms named Sala A = %d, want 1", roomCount)
	}

	var room models.Room
	if err := db.First(&room, "name = ?", "Sala A").Error; err != nil {
		t.Fatalf("load room: %v", err)
	}

	var joins []models.RoomTimeBlock
	if err := db.Where("room_id = ?", room.ID).Order("time_block_id ASC").Find(&joins).Error; err != nil {
		t.Fatalf("load joins: %v", err)
	}
	if len(joins) != len(blockIDs) {
		t.Fatalf("join rows = %d, want %d", len(joins), len(blockIDs))
	}
	for i, join := range joins {
		if join.TimeBlockID != blockIDs[i] {
			t.Errorf("join %d = block %d, want %d", i, join.TimeBlockID, blockIDs[i])
		}
	}

	if len(sink.events) != 2 ||
		sink.events[0].Description != "Sala Criada" ||
		sink.events[1].Description != "Sala Alterada" {
		t.Errorf("audit events = %+v", sink.events)
	}
}

func TestRoomUpsertRejectsUnknownTimeBlock(t *testing.T) {
	r, db, tokens, _ := newTestRouter(t)
	seedTimeBlocks(t, db)

	admin, err := tokens.Issue(1, true, token.Permissions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := doJSON(t, r, http.MethodPost, "/room", map[string]any{
		"name":        "Sala B",
		"start_time":  "08:00",
		"end_time":    "18:00",
		"time_blocks": []uint{999},
	}, admin)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "time_block_not_found") {
		t.Errorf("body = %s, want time_block_not_found", rec.Body.String())
	}

	// A transação desfaz a sala criada junto.
	var roomCount int64
	db.Model(&models.Room{}).Where("name = ?", "Sala B").Count(&roomCount)
	if roomCount != 0 {
		t.Errorf("rooms named Sala B = %d, want 0", roomCount)
	}
}

// ---------------------------------------------------
// Permissions
// ---------------------------------------------------

func TestPermissionsToggleWritesAudit(t *testing.T) {
	r, db, tokens, sink := newTestRouter(t)
	client := seedUser(t, db, "ana@example.com", "secret123", true)

	admin, err := tokens.Issue(99, true, token.Permissions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	off := false
	rec := doJSON(t, r, http.MethodPut,
		"/user/"+strconv.FormatUint(uint64(client.ID), 10)+"/permission",
		map[string]any{"logs": off}, admin)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}

	var updated models.User
	if err := db.First(&updated, client.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updated.PermissionLogs {
		t.Error("PermissionLogs still true")
	}

	if len(sink.events) != 1 ||
		sink.events[0].Module != audit.ModuleUsers ||
		sink.events[0].UserID != 99 {
		t.Errorf("audit events = %+v", sink.events)
	}
}
