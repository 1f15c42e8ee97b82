package services

// isOperator reports whether id is one of the configured operator accounts
func isOperator(operatorIDs []int64, id int64) bool {
	for _, op := range operatorIDs {
		if op == id {
			return true
		}
	}
	return false
}
