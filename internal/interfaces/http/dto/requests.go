package dto

// CreateFranchiseRequest creates a new franchise.
type CreateFranchiseRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateFranchiseNameRequest renames an existing franchise. The target id
// travels in the body rather than the path.
type UpdateFranchiseNameRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// AddBranchRequest attaches a new branch to a franchise.
type AddBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBranchNameRequest renames a branch belonging to the franchise in
// the path.
type UpdateBranchNameRequest struct {
	ID      string `json:"id" binding:"required"`
	NewName string `json:"newName" binding:"required"`
}

// AddProductRequest attaches a product to a branch, creating the product
// on first reference. Stock only seeds newly created products and must be
// strictly positive; adjust it to zero afterwards via the stock update.
type AddProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Stock int    `json:"stock" binding:"gt=0"`
}
