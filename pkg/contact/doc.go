// Package contact implements the shared address book: CRUD over contacts
// plus favorite toggling and paginated listing.
package contact
