package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth      = RouteApiV1 + "/auth"
	RouteAuthToken = RouteAuth + "/token"

	RouteUsers     = RouteApiV1 + "/users"
	RouteUser      = RouteUsers + "/:user_id"
	RouteUserBan   = RouteUser + "/ban"
	RouteUserFiles = RouteUser + "/files"

	RouteFiles         = RouteApiV1 + "/files"
	RouteFile          = RouteFiles + "/:file_id"
	RouteFileViews     = RouteFile + "/views"
	RouteFileDownloads = RouteFile + "/downloads"
	RouteFileTransfer  = RouteFile + "/transfer"
	RouteFileExpiry    = RouteFile + "/expiry"
	RouteFileShares    = RouteFile + "/share-links"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
