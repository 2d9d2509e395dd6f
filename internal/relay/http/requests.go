package http

// Request bodies accepted by the action endpoints. Ids accept JSON numbers
// or numeric strings; text fields accept strings, numbers or booleans.

type ManufacturersRequest struct {
	GadgetType Text `json:"gadget_type" swaggertype:"string" example:"MobilePhone"`
}

type ModelsRequest struct {
	ManufacturerID Text `json:"manufacturer_id" swaggertype:"string" example:"12"`
	GadgetType     Text `json:"gadget_type" swaggertype:"string" example:"MobilePhone"`
}

// QuoteDevice keeps the provider's field spelling.
type QuoteDevice struct {
	ManufacturerID Text `json:"ManufacturerID" swaggertype:"string" example:"12"`
	GadgetType     Text `json:"GadgetType" swaggertype:"string" example:"Laptop"`
	Model          Text `json:"Model" swaggertype:"string" example:"XPS 13"`
}

type QuoteRequest struct {
	DeviceData *QuoteDevice `json:"device_data"`
}

type PremiumsRequest struct {
	ManufacturerID Text `json:"manufacturer_id" swaggertype:"string" example:"12"`
	GadgetType     Text `json:"gadget_type" swaggertype:"string" example:"MobilePhone"`
	Model          Text `json:"model" swaggertype:"string" example:"iPhone 15"`
}

type PremiumRequest struct {
	PremiumID ID `json:"premium_id" swaggertype:"integer" example:"314"`
}

// CreateCustomerRequest carries the customer verbatim. givenName, lastName,
// email, mobileNumber, address1 and postCode are required.
type CreateCustomerRequest struct {
	CustomerData map[string]any `json:"customer_data"`
}

// FindCustomerRequest needs one of the two ids.
type FindCustomerRequest struct {
	CustomerID ID   `json:"customer_id" swaggertype:"integer" example:"1001"`
	ExternalID Text `json:"external_id" swaggertype:"string" example:"wp-user-7"`
}

type OpenBasketRequest struct {
	CustomerID       ID   `json:"customer_id" swaggertype:"integer" example:"1001"`
	PremiumPeriod    Text `json:"premium_period" swaggertype:"string" enums:"Month,Annual"`
	IncludeLossCover Text `json:"include_loss_cover" swaggertype:"string" enums:"Yes,No"`
}

type BasketRequest struct {
	BasketID ID `json:"basket_id" swaggertype:"integer" example:"55"`
}

type AddGadgetRequest struct {
	BasketID   ID             `json:"basket_id" swaggertype:"integer" example:"55"`
	GadgetData map[string]any `json:"gadget_data"`
}

type DirectDebitRequest struct {
	BasketID    ID             `json:"basket_id" swaggertype:"integer" example:"55"`
	DirectDebit map[string]any `json:"direct_debit"`
}

type CreatePolicyRequest struct {
	PolicyData map[string]any `json:"policy_data"`
}
