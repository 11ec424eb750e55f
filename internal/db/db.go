package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wave/internal/expense"
	"wave/internal/group"
	"wave/internal/message"
	"wave/internal/poll"
	"wave/internal/suggestion"
	"wave/internal/user"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&user.User{},
		&group.Group{},
		&group.Membership{},
		&message.Message{},
		&poll.Poll{},
		&expense.Expense{},
		&suggestion.Suggestion{},
	); err != nil {
		return err
	}

	// Conversation lookups: group feeds and direct pairs.
	stmts := []string{
		`create index if not exists idx_messages_group_created on messages(group_id, created_at);`,
		`create index if not exists idx_messages_pair on messages(sender_id, receiver_id, created_at);`,
		`create index if not exists idx_messages_group_type on messages(group_id, message_type, created_at desc);`,
		`create index if not exists idx_polls_group_created on polls(group_id, created_at desc);`,
		`create index if not exists idx_expenses_group_created on expenses(group_id, created_at);`,
		`create index if not exists idx_suggestions_group_created on suggestions(group_id, created_at desc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
