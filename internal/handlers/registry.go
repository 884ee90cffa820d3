package handlers

// AppHandlers bundles every route-owning handler.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	Search       *SearchHandler
	Document     *DocumentHandler
	Notification *NotificationHandler
	Favorite     *FavoriteHandler
	Subscription *SubscriptionHandler
}
