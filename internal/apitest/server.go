// Package apitest provides an in-memory fake of the Campusfind portal API
// for client tests. It mirrors the portal's endpoint shapes and status
// codes (envelope with a `message` field, mfa_required login step,
// X-User-ID identity) but none of its real crypto: signature verdicts are
// whatever the seeded message says.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"campusfind/internal/client/models"
	"campusfind/internal/common"
)

// User is a seeded portal account.
type User struct {
	Username string
	Email    string
	Fullname string
	Role     models.Role
	Password string
	MFACode  string
}

// Matrix mirrors the portal's role -> object -> permissions table.
var Matrix = map[models.Role]map[string][]string{
	models.RoleStudent: {
		"Items":    {"READ", "CREATE", "DELETE_OWN", "UPDATE_OWN"},
		"Users":    {"READ_SELF"},
		"Messages": {"SEND", "READ"},
	},
	models.RoleFaculty: {
		"Items":    {"READ", "CREATE", "DELETE_OWN"},
		"Users":    {"READ_SELF"},
		"Messages": {"SEND", "READ"},
	},
	models.RoleAdmin: {
		"Items":    {"READ", "CREATE", "UPDATE", "DELETE"},
		"Users":    {"READ", "UPDATE", "DELETE"},
		"Messages": {"READ", "DELETE"},
	},
}

// Server is the fake portal. Zero value is not usable; call New.
type Server struct {
	mu       sync.Mutex
	users    map[string]User
	items    map[int64]*models.Item
	messages []models.Message
	nextItem int64
	nextMsg  int64
}

func New() *Server {
	return &Server{
		users:    make(map[string]User),
		items:    make(map[int64]*models.Item),
		nextItem: 1,
		nextMsg:  1,
	}
}

// SeedUser registers an account without going through /api/register.
func (s *Server) SeedUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
}

// SeedItem inserts an item and returns its id.
func (s *Server) SeedItem(it models.Item) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = s.nextItem
	s.nextItem++
	if it.Status == "" {
		it.Status = models.StatusActive
	}
	s.items[it.ID] = &it
	return it.ID
}

// SeedMessage inserts a message as-is (including its IsAuthentic verdict).
func (s *Server) SeedMessage(m models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMsg
	s.nextMsg++
	s.messages = append(s.messages, m)
}

// Item returns a copy of the stored item, if any.
func (s *Server) Item(id int64) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return models.Item{}, false
	}
	return *it, true
}

// Messages returns a copy of all stored messages.
func (s *Server) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// Handler returns the fake portal as an http.Handler for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/verify-mfa", s.handleVerifyMFA)
	mux.HandleFunc("POST /api/forgot-password", s.handleForgotPassword)
	mux.HandleFunc("GET /api/items", s.withAuth(s.handleListItems))
	mux.HandleFunc("POST /api/items", s.withAuth(s.handleCreateItem))
	mux.HandleFunc("PATCH /api/items/{id}", s.withAuth(s.handlePatchItem))
	mux.HandleFunc("DELETE /api/items/{id}", s.withAuth(s.handleDeleteItem))
	mux.HandleFunc("GET /api/messages", s.withAuth(s.handleListMessages))
	mux.HandleFunc("POST /api/messages", s.withAuth(s.handleSendMessage))
	mux.HandleFunc("GET /api/acm", s.withAuth(s.handleACM))
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) withAuth(next func(http.ResponseWriter, *http.Request, User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(common.IdentityHeaderName)
		if username == "" {
			message(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		s.mu.Lock()
		u, ok := s.users[username]
		s.mu.Unlock()
		if !ok {
			message(w, http.StatusUnauthorized, "Invalid user")
			return
		}
		next(w, r, u)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fullname string `json:"fullname"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		message(w, http.StatusBadRequest, "Malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Username]; exists {
		message(w, http.StatusBadRequest, "User ID already exists")
		return
	}
	for _, u := range s.users {
		if u.Email == req.Email {
			message(w, http.StatusBadRequest, "Email already exists")
			return
		}
	}
	s.users[req.Username] = User{
		Username: req.Username,
		Email:    req.Email,
		Fullname: req.Fullname,
		Role:     models.Role(req.Role),
		Password: req.Password,
		MFACode:  "ABC123",
	}
	message(w, http.StatusCreated, "User registered successfully!")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	u, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || u.Password != req.Password {
		message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":              "mfa_required",
		"username":            u.Username,
		"message":             "Step 1/2 complete. Please enter MFA code.",
		"mfa_code_simulation": u.MFACode,
	})
}

func (s *Server) handleVerifyMFA(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		MFACode  string `json:"mfa_code"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	u, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || u.MFACode != req.MFACode {
		message(w, http.StatusUnauthorized, "Invalid MFA code")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"user": models.User{
			Username: u.Username,
			Fullname: u.Fullname,
			Role:     u.Role,
		},
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == req.Email {
			writeJSON(w, http.StatusOK, map[string]string{
				"status":          "success",
				"message":         "Recovery instructions sent!",
				"simulation_code": "RECOVER-TEST",
			})
			return
		}
	}
	message(w, http.StatusNotFound, "Email not found")
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Item, 0, len(s.items))
	for id := int64(1); id < s.nextItem; id++ {
		if it, ok := s.items[id]; ok {
			items = append(items, *it)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request, u User) {
	var req struct {
		ItemName    string `json:"item_name"`
		ItemType    string `json:"item_type"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		message(w, http.StatusBadRequest, "Malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextItem
	s.nextItem++
	s.items[id] = &models.Item{
		ID:           id,
		ItemName:     req.ItemName,
		ItemType:     models.ItemType(req.ItemType),
		Location:     req.Location,
		Description:  req.Description,
		PostedBy:     u.Username,
		PostedByName: u.Fullname,
		Timestamp:    time.Now().Format("2006-01-02 15:04:05"),
		Status:       models.StatusActive,
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Item posted securely",
		"item_id": id,
	})
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) canMutate(u User, it *models.Item) bool {
	return u.Role == models.RoleAdmin || it.PostedBy == u.Username
}

func (s *Server) handlePatchItem(w http.ResponseWriter, r *http.Request, u User) {
	id, err := itemID(r)
	if err != nil {
		message(w, http.StatusBadRequest, "Malformed request")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		message(w, http.StatusNotFound, "Item not found")
		return
	}
	if !s.canMutate(u, it) {
		message(w, http.StatusForbidden, "Access Denied")
		return
	}
	if req.Status == "" {
		message(w, http.StatusBadRequest, "Nothing to update")
		return
	}
	it.Status = models.ItemStatus(req.Status)
	message(w, http.StatusOK, fmt.Sprintf("Item status updated to %s", it.Status))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request, u User) {
	id, err := itemID(r)
	if err != nil {
		message(w, http.StatusBadRequest, "Malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		message(w, http.StatusNotFound, "Item not found")
		return
	}
	if !s.canMutate(u, it) {
		message(w, http.StatusForbidden, "Access Denied")
		return
	}
	delete(s.items, id)
	message(w, http.StatusOK, "Item deleted")
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request, u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.ReceiverID == u.Username || m.SenderID == u.Username {
			out = append(out, m)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": out})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, u User) {
	var req struct {
		ItemID     int64  `json:"item_id"`
		Content    string `json:"content"`
		ReceiverID string `json:"receiver_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		message(w, http.StatusBadRequest, "Malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[req.ItemID]
	if !ok {
		message(w, http.StatusNotFound, "Item not found")
		return
	}

	receiver := req.ReceiverID
	if receiver == "" {
		receiver = it.PostedBy
	}

	s.messages = append(s.messages, models.Message{
		ID:          s.nextMsg,
		ItemID:      req.ItemID,
		SenderID:    u.Username,
		ReceiverID:  receiver,
		Content:     strings.TrimSpace(req.Content),
		Timestamp:   time.Now().Format("2006-01-02 15:04:05"),
		IsAuthentic: true,
	})
	s.nextMsg++
	message(w, http.StatusCreated, "Secure message sent with Digital Signature")
}

func (s *Server) handleACM(w http.ResponseWriter, r *http.Request, u User) {
	perms, ok := Matrix[u.Role]
	if !ok {
		perms = map[string][]string{}
	}
	writeJSON(w, http.StatusOK, models.ACM{Role: u.Role, Permissions: perms})
}
