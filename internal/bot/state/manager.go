package state

import (
	"sync"

	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// User states constants
const (
	None              = "none"
	WaitingForAge     = "waiting_for_age"
	WaitingForWeight  = "waiting_for_weight"
	WaitingForHeight  = "waiting_for_height"
	WaitingForSearch  = "waiting_for_search"
	ChoosingGender    = "choosing_gender"
	ChoosingActivity  = "choosing_activity"
	ChoosingGoal      = "choosing_goal"
	EditingPreference = "editing_preferences"
)

// StateManager keeps the wizard step and working profile of each chat user
type StateManager interface {
	SetUserState(userID int64, state string)
	GetUserState(userID int64) string
	ClearUserState(userID int64)
	SetProfile(userID int64, profile domain.UserProfile)
	// GetProfile returns the stored profile, or DefaultProfile and false.
	GetProfile(userID int64) (domain.UserProfile, bool)
	ClearProfile(userID int64)
}

// Manager manages user states and working profiles in memory
type Manager struct {
	userStates   map[int64]string
	userProfiles map[int64]domain.UserProfile
	mu           sync.RWMutex
}

var _ StateManager = (*Manager)(nil)

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{
		userStates:   make(map[int64]string),
		userProfiles: make(map[int64]domain.UserProfile),
	}
}

// SetUserState sets the state for a user
func (m *Manager) SetUserState(userID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userStates[userID] = state
}

// GetUserState gets the state for a user
func (m *Manager) GetUserState(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.userStates[userID]
	if !exists {
		return None
	}
	return state
}

// ClearUserState clears the state for a user
func (m *Manager) ClearUserState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userStates, userID)
}

// SetProfile stores a copy of the user's working profile
func (m *Manager) SetProfile(userID int64, profile domain.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userProfiles[userID] = profile.Clone()
}

// GetProfile gets the user's working profile
func (m *Manager) GetProfile(userID int64) (domain.UserProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, exists := m.userProfiles[userID]
	if !exists {
		return domain.DefaultProfile(), false
	}
	return profile.Clone(), true
}

// ClearProfile forgets the user's working profile
func (m *Manager) ClearProfile(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userProfiles, userID)
}
