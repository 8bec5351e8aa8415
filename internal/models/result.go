package models

// Write acknowledgements mirroring the result documents the previous storage
// driver returned. Clients inspect insertedId and modifiedCount, so the field
// names are part of the wire contract.

// InsertResult acknowledges a single-row insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update, reporting how many rows matched.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult bundles the three acknowledgements a checkout produces, in
// the same field layout the old /payments response used.
type CheckoutResult struct {
	InsertResult       InsertResult `json:"insertResult"`
	ChangeEnrollStatus UpdateResult `json:"changeEnrollStatus"`
	UpdateSeats        UpdateResult `json:"updateSeats"`
}
