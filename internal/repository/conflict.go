package repository

import "gorm.io/gorm/clause"

// onConflictDoNothing is the ON CONFLICT DO NOTHING clause shared by every
// idempotent bulk insert (occurrences, top-ups), grounded on the civic-os
// ExpandRecurringSeriesWorker's createInstanceRecord query.
func onConflictDoNothing() clause.OnConflict {
	return clause.OnConflict{DoNothing: true}
}
