package form

// Message keys attached to invalid fields. They are catalog keys and are
// localized when the form is rendered.
const (
	MsgRequired          = "validation.required"
	MsgPricePositive     = "validation.price_positive"
	MsgImageURI          = "validation.image_uri"
	MsgEmail             = "validation.email"
	MsgNumberNonNegative = "validation.number_non_negative"
	MsgCartUserID        = "validation.cart_user_id"
	MsgCartItemsRequired = "validation.cart_items_required"
	MsgLineItemProduct   = "validation.line_item_product"
	MsgLineItemQuantity  = "validation.line_item_quantity"
	MsgCoordinate        = "validation.coordinate"
)

// Product fields.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImage       = "image"
)

// Login and user account fields.
const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldFirstname = "firstname"
	FieldLastname  = "lastname"
	FieldPhone     = "phone"
	FieldCity      = "city"
	FieldStreet    = "street"
	FieldNumber    = "number"
	FieldZipcode   = "zipcode"
	FieldLat       = "lat"
	FieldLong      = "long"
)

// Cart fields.
const (
	FieldUserID    = "userId"
	FieldProducts  = "products"
	FieldProductID = "productId"
	FieldQuantity  = "quantity"
)

// ProductFields lists every product form field.
var ProductFields = []string{FieldTitle, FieldPrice, FieldDescription, FieldCategory, FieldImage}

// LoginFields lists every login form field.
var LoginFields = []string{FieldUsername, FieldPassword}

// CartFields lists every cart form field.
var CartFields = []string{FieldUserID, FieldProducts}

// LineItemFields lists the add-item sub-form fields.
var LineItemFields = []string{FieldProductID, FieldQuantity}

// UserFields lists every user form field.
var UserFields = []string{
	FieldUsername, FieldEmail, FieldPassword, FieldFirstname, FieldLastname,
	FieldPhone, FieldCity, FieldStreet, FieldNumber, FieldZipcode, FieldLat, FieldLong,
}
