package testutil

import (
	"time"

	"lotto/domain/entities"
)

// CreateTestDraw creates a test draw with default values
func CreateTestDraw(id int64, state entities.DrawState) *entities.Draw {
	return &entities.Draw{
		ID:          id,
		State:       state,
		Capacity:    10,
		EntryPrice:  1000,
		PrizeAmount: 900,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateTestEntry creates a test entry with default values
func CreateTestEntry(drawID, accountID, position int64) *entities.Entry {
	return &entities.Entry{
		DrawID:     drawID,
		AccountID:  accountID,
		Position:   position,
		EntryPrice: 1000,
	}
}

// CreateTestEntryWithAffiliate creates a test entry carrying a referrer
func CreateTestEntryWithAffiliate(drawID, accountID, position, affiliateID int64) *entities.Entry {
	entry := CreateTestEntry(drawID, accountID, position)
	entry.AffiliateAccountID = &affiliateID
	return entry
}

// CreateTestRandomnessRequest creates a test request correlation
func CreateTestRandomnessRequest(requestID string, drawID int64) *entities.RandomnessRequest {
	return &entities.RandomnessRequest{
		RequestID: requestID,
		DrawID:    drawID,
	}
}
