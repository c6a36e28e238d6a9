package models

// Folder and word identifiers are plain strings. The folder tree is
// rooted at the sentinel id "root"; a folder with an empty ParentID is
// treated as attached to root.
const (
	RootFolderID = "root"

	TypePositive = "positive"
	TypeNegative = "negative"
)

// Folder is a node in the organization tree.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	NSFW     bool   `json:"nsfw,omitempty"`
}

// Word is an atomic selectable unit: a native-language label plus the
// output-language value that ends up in the rendered prompt. A word
// with CardID set is a card token and is rendered parenthesized as a
// single unit (see pkg/prompt).
type Word struct {
	ID       string   `json:"id"`
	FolderID string   `json:"folderId"`
	LabelJP  string   `json:"label_jp"`
	ValueEN  string   `json:"value_en"`
	NSFW     bool     `json:"nsfw,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Note     string   `json:"note,omitempty"`
	Favorite bool     `json:"favorite,omitempty"`

	TemplateIDs []string `json:"templateIds,omitempty"`
	// TemplateID is the legacy singular form, folded into TemplateIDs
	// on normalization.
	TemplateID string `json:"templateId,omitempty"`

	CardID              string        `json:"cardId,omitempty"`
	CardName            string        `json:"cardName,omitempty"`
	CardPrompt          string        `json:"cardPrompt,omitempty"`
	CardRefs            []CardWordRef `json:"cardRefs,omitempty"`
	CardDisabledWordIDs []string      `json:"cardDisabledWordIds,omitempty"`
}

// Template composes a word's output value with a chosen fragment at
// selection time. Applying a template never mutates the stored word;
// it produces a derived word with a synthesized id.
type Template struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Options         []TemplateOption `json:"options"`
	AllowFree       bool             `json:"allowFree,omitempty"`
	DefaultOptionID string           `json:"defaultOptionId,omitempty"`
	SpaceEnabled    bool             `json:"spaceEnabled,omitempty"`
	// Position is "before" or "after"; empty means "before".
	Position string `json:"position,omitempty"`
}

// TemplateOption is one selectable fragment of a template.
type TemplateOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardWordRef is a snapshot reference to a word inside a card. The
// denormalized label/value/nsfw/note fields let the ref resolve even
// after the source word has been deleted.
type CardWordRef struct {
	WordID string `json:"wordId"`
	// Strength of 0 means unset; apply falls back to 1.0.
	Strength float64 `json:"strength,omitempty"`
	// Repeat is kept only when > 1.
	Repeat  int    `json:"repeat,omitempty"`
	LabelJP string `json:"label_jp,omitempty"`
	ValueEN string `json:"value_en,omitempty"`
	NSFW    bool   `json:"nsfw,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Card is a named, reusable bundle of word references. Unlike
// favorites, applying a card merges into the target selection list.
type Card struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	FolderID  string        `json:"folderId"`
	Type      string        `json:"type"`
	Words     []CardWordRef `json:"words"`
	NSFW      bool          `json:"nsfw"`
	CreatedAt int64         `json:"createdAt,omitempty"`

	TemplateIDs []string `json:"templateIds,omitempty"`
}

// SelectedWord is a word (or card token) as it sits in a selection
// list: the word itself plus strength, list type, and repeat count.
type SelectedWord struct {
	Word
	Strength float64 `json:"strength"`
	Type     string  `json:"type"`
	// Repeat of 0 means a single instance.
	Repeat int `json:"repeat,omitempty"`
}

// PromptFavorite is a named snapshot of one selection list. Quality
// templates share the same shape but live in a separate collection
// with their own lifecycle.
type PromptFavorite struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Words []SelectedWord `json:"words"`
	NSFW  bool           `json:"nsfw"`
}

// QualitySelection records which quality template is active per list
// type. Empty means none.
type QualitySelection struct {
	Positive string `json:"positive,omitempty"`
	Negative string `json:"negative,omitempty"`
}

// DataStore is the aggregate document: the unit of undo snapshotting,
// export, and import.
type DataStore struct {
	Folders   []Folder   `json:"folders"`
	Words     []Word     `json:"words"`
	Templates []Template `json:"templates"`
	Cards     []Card     `json:"cards"`
}

// ValidType reports whether t is one of the two selection list types.
func ValidType(t string) bool {
	return t == TypePositive || t == TypeNegative
}
