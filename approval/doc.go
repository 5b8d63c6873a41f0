// Package approval classifies the free-text approval status found in a
// service export. A status is positive when it mentions "approved" and does
// not open with a negating word such as "not", "isn't" or "hasn't".
package approval
