package dto

// Success and error messages shared across handlers.
const (
	MessageOK        = "The request was processed successfully."
	MessageError     = "There was an internal error processing the request."
	MessageErrorBody = "Errors were detected in the request body."

	MessageFranchiseCreated      = "The franchise has been successfully created and is now available in the system."
	MessageFranchiseNameTaken    = "A franchise with this name already exists."
	MessageFranchiseNameUpdated  = "Franchise name has been successfully updated."
	MessageBranchCreated         = "Branch has been successfully added."
	MessageBranchNameUpdated     = "Branch name has been successfully updated."
	MessageProductCreated        = "Product created successfully."
	MessageProductRemoved        = "Product removed successfully."
	MessageProductStockUpdated   = "Product stock updated successfully."
	MessageProductNameUpdated    = "Product name updated successfully."
	MessageHighestStockPerBranch = "Products with highest stock per branch"
)
