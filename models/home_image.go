package models

// HomeImage is the single hero image on the public home page. Exactly one
// row exists; it is created at startup and only ever updated after that.
type HomeImage struct {
	ID       uint64 `gorm:"primaryKey"`
	Filename string
}
