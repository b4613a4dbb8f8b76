package expenses

// Expense is one spending record. Date is kept as text in ISO-8601
// (YYYY-MM-DD), the format the mobile client sends.
type Expense struct {
	ID       int64
	OwnerID  int64
	Title    string
	Amount   float64
	Category string
	Date     string
}
