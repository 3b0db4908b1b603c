package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

type FavoriteID string

func NewFavoriteID(id string) FavoriteID { return FavoriteID(id) }
func (f FavoriteID) String() string      { return string(f) }
func (f FavoriteID) IsEmpty() bool       { return string(f) == "" }

type SearchTermID string

func NewSearchTermID(id string) SearchTermID { return SearchTermID(id) }
func (s SearchTermID) String() string        { return string(s) }
func (s SearchTermID) IsEmpty() bool         { return string(s) == "" }

type SuggestionID string

func NewSuggestionID(id string) SuggestionID { return SuggestionID(id) }
func (s SuggestionID) String() string        { return string(s) }
func (s SuggestionID) IsEmpty() bool         { return string(s) == "" }

type RoleID string

func NewRoleID(id string) RoleID { return RoleID(id) }
func (r RoleID) String() string  { return string(r) }
func (r RoleID) IsEmpty() bool   { return string(r) == "" }
