// Package timezone holds the application location used for human facing dates,
// such as the day stamp inside booking references. Stored timestamps stay UTC.
//
// Call Init once at startup with an IANA name ("UTC", "America/New_York").
// Until then every helper behaves as if the location were UTC.
package timezone
