package kernel

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type FirstName string

type LastName string

// BucketURL is an object-storage location for an uploaded file
type BucketURL string
