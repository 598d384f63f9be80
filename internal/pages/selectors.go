package pages

// Storefront paths.
const (
	loginPath            = "/"
	inventoryPath        = "/inventory.html"
	cartPath             = "/cart.html"
	checkoutStepOnePath  = "/checkout-step-one.html"
	checkoutStepTwoPath  = "/checkout-step-two.html"
	checkoutCompletePath = "/checkout-complete.html"
)

// Shared header selectors.
const (
	cartLink  = ".shopping_cart_link"
	cartBadge = ".shopping_cart_badge"
)

// Login page selectors.
const (
	usernameInput = "#user-name"
	passwordInput = "#password"
	loginButton   = "#login-button"
	errorMessage  = `[data-test="error"]`
)

// Inventory page selectors.
const (
	inventoryList = ".inventory_list"
	inventoryRow  = ".inventory_item"
	itemName      = ".inventory_item_name"
	itemPrice     = ".inventory_item_price"
)

// Cart page selectors.
const (
	cartRow                = ".cart_item"
	checkoutButton         = "#checkout"
	continueShoppingButton = "#continue-shopping"
)

// Checkout selectors.
const (
	firstNameInput  = "#first-name"
	lastNameInput   = "#last-name"
	postalCodeInput = "#postal-code"
	continueButton  = "#continue"
	cancelLink      = "#cancel"
	finishButton    = "#finish"
	itemTotalLabel  = ".summary_subtotal_label"
	taxLabel        = ".summary_tax_label"
	totalLabel      = ".summary_total_label"
	completeHeader  = ".complete-header"
	backHomeButton  = "#back-to-products"
)

// Row buttons. Add and remove share the row, distinguished by data-test.
const (
	rowButton    = "button"
	addButton    = `button[data-test^="add-to-cart-"]`
	removeButton = `button[data-test^="remove-"]`
)
