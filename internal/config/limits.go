package config

const (
	// MaxBoardNameLength is the maximum length for board names.
	// Limited to 255 to fit in VARCHAR(255).
	MaxBoardNameLength = 255

	// MaxTaskTitleLength is the maximum length for task titles.
	MaxTaskTitleLength = 255

	// MaxDescriptionLength caps board and task descriptions.
	MaxDescriptionLength = 10000

	// MaxUsernameLength matches the users.username column.
	MaxUsernameLength = 150

	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72
)
