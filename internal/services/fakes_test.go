package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
)

// testConfig installs a minimal config so token issuing and upload
// limits work without a config file on disk.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "application/pdf"}
	cfg.Upload.ImageQuality = 85
	cfg.Subscription.PriceCents = 6500
	cfg.Subscription.Currency = "EUR"
	cfg.Subscription.DurationDays = 182
	config.AppConfig = cfg
	return cfg
}

// In-memory repository fakes. The db argument is part of the repository
// contract but unused here; tests pass nil.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) id() string {
	r.nextID++
	return fmt.Sprintf("user-%d", r.nextID)
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = r.id()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ *gorm.DB, userID string, role models.UserRole) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) UpdateStatus(_ *gorm.DB, userID string, status models.UserStatus) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (r *fakeUserRepo) List(_ *gorm.DB, page, pageSize int) ([]models.User, int64, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id])
	}
	return users, int64(len(users)), nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeRefreshTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return rt, nil
}

func (r *fakeRefreshTokenRepo) Delete(_ *gorm.DB, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(_ *gorm.DB, userID string) error {
	for k, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ *gorm.DB) (int64, error) {
	var removed int64
	for k, rt := range r.tokens {
		if rt.ExpiresAt.Before(time.Now()) {
			delete(r.tokens, k)
			removed++
		}
	}
	return removed, nil
}

type fakeTenantProfileRepo struct {
	profiles  map[string]*models.TenantProfile // keyed by profile id
	nextID    int
	searchErr error
}

func newFakeTenantProfileRepo() *fakeTenantProfileRepo {
	return &fakeTenantProfileRepo{profiles: map[string]*models.TenantProfile{}}
}

func (r *fakeTenantProfileRepo) Create(_ *gorm.DB, profile *models.TenantProfile) error {
	if profile.ID == "" {
		r.nextID++
		profile.ID = fmt.Sprintf("profile-%d", r.nextID)
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeTenantProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.TenantProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeTenantProfileRepo) FindByID(_ *gorm.DB, id string) (*models.TenantProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeTenantProfileRepo) Update(_ *gorm.DB, profile *models.TenantProfile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeTenantProfileRepo) Delete(_ *gorm.DB, userID string) error {
	for id, p := range r.profiles {
		if p.UserID == userID {
			delete(r.profiles, id)
		}
	}
	return nil
}

func (r *fakeTenantProfileRepo) Search(_ *gorm.DB, criteria *repositories.TenantSearchCriteria) ([]models.TenantProfile, int64, error) {
	if r.searchErr != nil {
		return nil, 0, r.searchErr
	}

	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matched []models.TenantProfile
	for _, id := range ids {
		p := r.profiles[id]
		if !p.ProfileComplete {
			continue
		}
		if criteria.City != "" && !contains(p.LocationPreference, criteria.City) {
			continue
		}
		if criteria.MinBudget != nil && p.MaxBudget < *criteria.MinBudget {
			continue
		}
		if criteria.MaxBudget != nil && p.MaxBudget > *criteria.MaxBudget {
			continue
		}
		if criteria.HasPets != nil && p.HasPets != *criteria.HasPets {
			continue
		}
		if criteria.Smokes != nil && p.Smokes != *criteria.Smokes {
			continue
		}
		matched = append(matched, *p)
	}
	return matched, int64(len(matched)), nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

type fakeDocumentRepo struct {
	docs   map[string]*models.Document
	nextID int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*models.Document{}}
}

func (r *fakeDocumentRepo) Create(_ *gorm.DB, doc *models.Document) error {
	if doc.ID == "" {
		r.nextID++
		doc.ID = fmt.Sprintf("doc-%d", r.nextID)
	}
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) FindByID(_ *gorm.DB, id string) (*models.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Document, error) {
	var docs []models.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			docs = append(docs, *d)
		}
	}
	return docs, nil
}

func (r *fakeDocumentRepo) FindByStatus(_ *gorm.DB, status models.DocumentStatus, page, pageSize int) ([]models.Document, int64, error) {
	var docs []models.Document
	for _, d := range r.docs {
		if d.Status == status {
			docs = append(docs, *d)
		}
	}
	return docs, int64(len(docs)), nil
}

func (r *fakeDocumentRepo) Update(_ *gorm.DB, doc *models.Document) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.docs, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ *gorm.DB, n *models.Notification) error {
	r.nextID++
	n.ID = fmt.Sprintf("notification-%d", r.nextID)
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindByUser(_ *gorm.DB, userID string, page, pageSize int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) CountUnread(_ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ *gorm.DB, userID, notificationID string) error {
	for _, n := range r.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(_ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) byUser(userID string) []*models.Notification {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type favoritePair struct {
	landlordID string
	tenantID   string
}

type fakeFavoriteRepo struct {
	pairs []favoritePair
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{}
}

func (r *fakeFavoriteRepo) Save(_ *gorm.DB, landlordID, tenantID string) error {
	for _, p := range r.pairs {
		if p.landlordID == landlordID && p.tenantID == tenantID {
			return nil
		}
	}
	r.pairs = append(r.pairs, favoritePair{landlordID, tenantID})
	return nil
}

func (r *fakeFavoriteRepo) Remove(_ *gorm.DB, landlordID, tenantID string) error {
	for i, p := range r.pairs {
		if p.landlordID == landlordID && p.tenantID == tenantID {
			r.pairs = append(r.pairs[:i], r.pairs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) Exists(_ *gorm.DB, landlordID, tenantID string) (bool, error) {
	for _, p := range r.pairs {
		if p.landlordID == landlordID && p.tenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) ListTenantIDs(_ *gorm.DB, landlordID string) ([]string, error) {
	var ids []string
	for _, p := range r.pairs {
		if p.landlordID == landlordID {
			ids = append(ids, p.tenantID)
		}
	}
	return ids, nil
}

type fakeSubscriptionRepo struct {
	subs     map[string]*models.UserSubscription
	payments map[string]*models.PaymentTransaction // keyed by external id
	nextID   int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs:     map[string]*models.UserSubscription{},
		payments: map[string]*models.PaymentTransaction{},
	}
}

func (r *fakeSubscriptionRepo) Create(_ *gorm.DB, sub *models.UserSubscription) error {
	if sub.ID == "" {
		r.nextID++
		sub.ID = fmt.Sprintf("sub-%d", r.nextID)
	}
	sub.CreatedAt = time.Now()
	r.subs[sub.ID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ *gorm.DB, id string) (*models.UserSubscription, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, repositories.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (r *fakeSubscriptionRepo) FindByUser(_ *gorm.DB, userID string) (*models.UserSubscription, error) {
	var latest *models.UserSubscription
	for _, sub := range r.subs {
		if sub.UserID != userID {
			continue
		}
		if latest == nil || sub.CreatedAt.After(latest.CreatedAt) {
			latest = sub
		}
	}
	if latest == nil {
		return nil, repositories.ErrSubscriptionNotFound
	}
	return latest, nil
}

func (r *fakeSubscriptionRepo) Update(_ *gorm.DB, sub *models.UserSubscription) error {
	r.subs[sub.ID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) FindExpired(_ *gorm.DB, now time.Time) ([]models.UserSubscription, error) {
	var out []models.UserSubscription
	for _, sub := range r.subs {
		if sub.Status == models.SubscriptionStatusActive && sub.EndDate.Before(now) {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CreatePayment(_ *gorm.DB, payment *models.PaymentTransaction) error {
	if payment.ID == "" {
		r.nextID++
		payment.ID = fmt.Sprintf("payment-%d", r.nextID)
	}
	r.payments[payment.ExternalID] = payment
	return nil
}

func (r *fakeSubscriptionRepo) FindPaymentByExternalID(_ *gorm.DB, externalID string) (*models.PaymentTransaction, error) {
	payment, ok := r.payments[externalID]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	return payment, nil
}

func (r *fakeSubscriptionRepo) UpdatePayment(_ *gorm.DB, payment *models.PaymentTransaction) error {
	r.payments[payment.ExternalID] = payment
	return nil
}

// fakeStorage keeps saved objects in memory.
type fakeStorage struct {
	objects map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://signed.example/" + path, nil
}

func (s *fakeStorage) GetSize(_ context.Context, path string) (int64, error) {
	data, ok := s.objects[path]
	if !ok {
		return 0, errors.New("not found")
	}
	return int64(len(data)), nil
}

// fakePusher records realtime pushes.
type fakePusher struct {
	pushed []string // user ids in push order
}

func (p *fakePusher) Push(userID string, _ *models.Notification) {
	p.pushed = append(p.pushed, userID)
}
