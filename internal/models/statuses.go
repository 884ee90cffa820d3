package models

// UserRole is one of the four platform roles.
type UserRole string

const (
	UserRoleHuurder     UserRole = "huurder"     // tenant
	UserRoleVerhuurder  UserRole = "verhuurder"  // landlord
	UserRoleBeoordelaar UserRole = "beoordelaar" // document reviewer
	UserRoleBeheerder   UserRole = "beheerder"   // administrator
)

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// DocumentStatus follows the review lifecycle. Dutch values are the wire
// format the platform has always used.
type DocumentStatus string

const (
	DocumentStatusWachtend    DocumentStatus = "wachtend"
	DocumentStatusGoedgekeurd DocumentStatus = "goedgekeurd"
	DocumentStatusAfgekeurd   DocumentStatus = "afgekeurd"
)

type DocumentType string

const (
	DocumentTypeIdentiteitsbewijs     DocumentType = "identiteitsbewijs"
	DocumentTypeInkomensverklaring    DocumentType = "inkomensverklaring"
	DocumentTypeWerkgeversverklaring  DocumentType = "werkgeversverklaring"
	DocumentTypeBankafschrift         DocumentType = "bankafschrift"
	DocumentTypeHuurgarantie          DocumentType = "huurgarantie"
	DocumentTypeOverig                DocumentType = "overig"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type NotificationType string

const (
	NotificationTypeDocumentGoedgekeurd NotificationType = "document_goedgekeurd"
	NotificationTypeDocumentAfgekeurd   NotificationType = "document_afgekeurd"
	NotificationTypeSubscription        NotificationType = "subscription"
	NotificationTypeSystem              NotificationType = "system"
)
