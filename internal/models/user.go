package model

// User is a clan member as stored in the users table. Points is the running
// total maintained by the ingestion bot, not derived here.
type User struct {
	DiscordID string `json:"discordId"`
	Points    int    `json:"points"`
	Joined    string `json:"joined"`
}

// UserWithNickname is a User joined with their first nickname record, with the
// bracketed rank suffix already stripped. Nickname is empty when the user has
// no nickname on record.
type UserWithNickname struct {
	User
	Nickname string `json:"nickname,omitempty"`
}

type Nickname struct {
	DiscordID string `json:"discordId"`
	Nickname  string `json:"nickname"`
}
