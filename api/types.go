package api

// User is the backend's user representation. Optional profile fields are
// pointers so a missing value stays distinguishable from an empty string.
type User struct {
	ID             int     `json:"id"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Role           string  `json:"role"`
	UserType       string  `json:"user_type"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Country        string  `json:"country"`
	FarmName       *string `json:"farm_name"`
	FarmSize       *string `json:"farm_size"`
	FarmType       *string `json:"farm_type"`
	YearsFarming   *int    `json:"years_farming"`
	BusinessName   *string `json:"business_name"`
	BusinessType   *string `json:"business_type"`
	BusinessRegNum *string `json:"business_reg_number"`
	Bio            *string `json:"bio,omitempty"`
	Location       *string `json:"location,omitempty"`
	IsVerified     bool    `json:"is_verified"`
	IsActive       bool    `json:"is_active,omitempty"`
}

// RegisterRequest is the registration payload. Role-specific optionals are
// pointers and marshal as explicit nulls when absent, matching what the
// backend expects from the web client.
type RegisterRequest struct {
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Role            string  `json:"role"`
	UserType        string  `json:"user_type"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Country         string  `json:"country"`
	FarmName        *string `json:"farm_name"`
	FarmSize        *string `json:"farm_size"`
	FarmType        *string `json:"farm_type"`
	YearsFarming    *int    `json:"years_farming"`
	BusinessName    *string `json:"business_name"`
	BusinessType    *string `json:"business_type"`
	BusinessRegNum  *string `json:"business_reg_number"`
	TermsAgreed     bool    `json:"terms_agreed"`
}

// RegisterResponse is the 2xx registration reply.
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// VerifyRequest confirms an emailed verification code.
type VerifyRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}

// VerifyResponse is the 2xx verification reply. AccessToken and User are
// present only when the backend logs the account in on verification.
type VerifyResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// ResendVerificationRequest asks for a fresh verification code.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the 2xx login reply.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// MessageResponse is a generic {"message": ...} reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileUpdate is a partial profile update. Only non-nil fields are sent;
// the backend leaves everything else untouched.
type ProfileUpdate struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	FarmName       *string `json:"farm_name,omitempty"`
	FarmSize       *string `json:"farm_size,omitempty"`
	FarmType       *string `json:"farm_type,omitempty"`
	YearsFarming   *int    `json:"years_farming,omitempty"`
	BusinessName   *string `json:"business_name,omitempty"`
	BusinessType   *string `json:"business_type,omitempty"`
	BusinessRegNum *string `json:"business_reg_number,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Location       *string `json:"location,omitempty"`
}

// ProfileUpdateResponse reports which profile fields changed.
type ProfileUpdateResponse struct {
	Message       string   `json:"message"`
	UpdatedFields []string `json:"updated_fields"`
	User          *User    `json:"user"`
}

// Product is a marketplace listing.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity_available"`
	ImageURL    *string `json:"image_url"`
	FarmerID    int     `json:"farmer_id"`
	IsAvailable bool    `json:"is_available"`
}

// ProductCreate is the payload for creating or updating a listing.
type ProductCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity_available"`
	ImageURL    *string `json:"image_url"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderCreate is the payload for placing an order.
type OrderCreate struct {
	Items           []OrderItem `json:"items"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           *string     `json:"notes"`
}

// Order is a placed order as the backend reports it.
type Order struct {
	ID              int         `json:"id"`
	BuyerID         int         `json:"buyer_id"`
	Status          string      `json:"status"`
	Total           float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []OrderItem `json:"items"`
	CreatedAt       string      `json:"created_at"`
}

// BuyerAnalytics summarizes a buyer's purchase activity.
type BuyerAnalytics struct {
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

// FarmerAnalytics summarizes a farmer's sales activity.
type FarmerAnalytics struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	ActiveListing int     `json:"active_listings"`
}
