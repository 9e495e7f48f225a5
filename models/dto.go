package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email" binding:"omitempty,email"`
	Phone string `json:"phone" form:"phone"`
	Role  string `json:"role" form:"role" binding:"omitempty,oneof=user admin"`
}

type AddCartItemRequest struct {
	UserID       int    `json:"user_id" binding:"required"`
	ProductID    int    `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	SelectedSize string `json:"selected_size" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type AddressRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	Apartment     string `json:"apartment"`
	City          string `json:"city" binding:"required"`
	Zip           string `json:"zip" binding:"required"`
	OrderNotes    string `json:"order_notes"`
}

type CheckoutRequest struct {
	UserID         int            `json:"user_id" binding:"required"`
	Address        AddressRequest `json:"address" binding:"required"`
	ShippingMethod string         `json:"shipping_method" binding:"required,oneof='Flat rate' 'Local pickup'"`
	PaymentMethod  string         `json:"payment_method" binding:"required,oneof='CASH ON DELIVERY' UPI"`
	Email          string         `json:"email" binding:"required,email"`
	Phone          string         `json:"phone" binding:"required"`
	Status         string         `json:"status" binding:"omitempty,oneof=Pending Confirmed Delivered Cancelled"`
}

type UpdateCheckoutStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Confirmed Delivered Cancelled"`
}

type PaymentSuccessRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
}

type CreateReviewRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Review    string `json:"review" binding:"required"`
}

type UpdateReviewRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Rating int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Review string `json:"review"`
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
