package notice

// Catalog keys for notices raised by the console core.
const (
	KeyLoginRequired    = "notice.login_required"
	KeyLoginSucceeded   = "notice.login_succeeded"
	KeyLoginFailed      = "notice.login_failed"
	KeyLoggedOut        = "notice.logged_out"
	KeySubmitInProgress = "notice.submit_in_progress"
	KeyFetchFailed      = "notice.fetch_failed"
	KeyDeleteFailed     = "notice.delete_failed"
	KeyDeleted          = "notice.deleted"
	KeyScreenExpired    = "notice.screen_expired"

	KeyProductCreated = "notice.product_created"
	KeyProductUpdated = "notice.product_updated"
	KeyProductFailed  = "notice.product_failed"
	KeyCartCreated    = "notice.cart_created"
	KeyCartUpdated    = "notice.cart_updated"
	KeyCartFailed     = "notice.cart_failed"
	KeyUserCreated    = "notice.user_created"
	KeyUserUpdated    = "notice.user_updated"
	KeyUserFailed     = "notice.user_failed"
	KeyLineItemFixes  = "notice.line_item_invalid"

	KeyProductsFetchFailed = "notice.products_fetch_failed"
	KeyProductDeleteFailed = "notice.product_delete_failed"
	KeyProductDeleted      = "notice.product_deleted"
	KeyCartsFetchFailed    = "notice.carts_fetch_failed"
	KeyCartDeleteFailed    = "notice.cart_delete_failed"
	KeyCartDeleted         = "notice.cart_deleted"
	KeyUsersFetchFailed    = "notice.users_fetch_failed"
	KeyUserDeleteFailed    = "notice.user_delete_failed"
	KeyUserDeleted         = "notice.user_deleted"
)
