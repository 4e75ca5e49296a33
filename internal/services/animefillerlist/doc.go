// Package animefillerlist fetches show pages from animefillerlist.com and
// extracts the episode list text for a category such as "filler" or "canon".
//
// Every HTTP-level failure (status 400 and above) is reported as a
// NotFoundError; the site answers unknown show slugs that way. Transport
// failures are tagged with services.ErrFetch.
package animefillerlist
