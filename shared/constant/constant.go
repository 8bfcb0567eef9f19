package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage      = "page"
	RequestParamPageSize  = "pageSize"
	RequestParamSearch    = "search"
	RequestParamStatus    = "status"
	RequestParamRoomID    = "roomId"
	RequestParamStartTime = "startTime"
	RequestParamEndTime   = "endTime"
	RequestParamModal     = "modal"
	RequestParamNotice    = "notice"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 1 << 20 // 1 MB
)

const (
	ModalCreate  = "create"
	ModalEdit    = "edit"
	ModalProcess = "process"
)

const (
	DefaultValuePage     = 1
	DefaultValuePageSize = 100
	RecentBookingsLimit  = 5
)

const (
	RoomStatusAvailable   = "Tersedia"
	RoomStatusUnavailable = "Tidak Tersedia"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	ResponseHeaderTotalCount        = "X-Total-Count"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	RouteLogin    = "/login"
	RouteLogout   = "/logout"
	RouteRegister = "/register"
	RouteHome     = "/"
	RouteRooms    = "/rooms"
	RouteBookings = "/bookings"
	RouteProfile  = "/profile"
	RouteHealth   = "/health"
)

const (
	Asterix = "*"
	Empty   = ""
)
