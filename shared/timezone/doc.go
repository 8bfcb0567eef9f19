// Package timezone holds the application timezone used to render booking times.
//
//	timezone.Setup("Asia/Jakarta")
//	t, err := timezone.ParseAPI("2025-03-10T09:00:00")
//	s := timezone.Format(t, "15:04")
//
// Setup is called once from main with APP_TIMEZONE. Until then UTC is used.
package timezone
