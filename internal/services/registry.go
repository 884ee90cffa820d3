package services

// ServiceContainer bundles every service the handlers depend on.
type ServiceContainer struct {
	Auth            AuthService
	User            UserService
	TenantProfile   TenantProfileService
	LandlordProfile LandlordProfileService
	Search          SearchService
	Document        DocumentService
	Notification    NotificationService
	Favorite        FavoriteService
	Subscription    SubscriptionService
}
