package storage

const (
	// Transaction queries

	// Зарегистрировать новую операцию
	CreateTransactionQuery = `
		INSERT INTO transactions (id, currency_code, target_currency, type, amount, rate, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	// Полная история операций строго в порядке вставки (seq, не created_at:
	// метка времени не различает записи в пределах одного тика)
	ListTransactionsQuery = `
		SELECT id, currency_code, target_currency, type, amount, rate, request_id, created_at
		FROM transactions
		ORDER BY seq
	`

	// Проверка идемпотентности по request_id
	CheckTransactionExistsQuery = `
		SELECT EXISTS(
			SELECT 1
			FROM transactions
			WHERE request_id = $1
		)
	`

	GetTransactionByIDQuery = `
		SELECT id, currency_code, target_currency, type, amount, rate, request_id, created_at
		FROM transactions
		WHERE id = $1
	`
)
