package domain

var (
	MessageSuccessGetStores = "stores retrieved successfully"

	MessageFailedFetchStores = "Failed to fetch stores"
)
