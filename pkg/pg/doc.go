// Package pg is the PostgreSQL side of the persistence layer: a pgx/v5
// connection pool, goose migrations, health checks, error helpers and a
// Persister that runs lifecycle hooks (declared field sanitizers included)
// before every insert or update it executes.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//
//	posts := pg.NewPersister(pool, hooks,
//	    pg.Statement[Post]{
//	        SQL:  `INSERT INTO posts (id, title, body) VALUES ($1, $2, $3)`,
//	        Args: func(p *Post) []any { return []any{p.ID, p.Title, p.Body} },
//	    },
//	    pg.Statement[Post]{
//	        SQL:  `UPDATE posts SET title = $2, body = $3 WHERE id = $1`,
//	        Args: func(p *Post) []any { return []any{p.ID, p.Title, p.Body} },
//	    },
//	)
//	err = posts.Create(ctx, &Post{ID: id, Title: "<script>x</script>Hello"}) // stores "Hello"
//
// Statement arguments are collected after the hooks ran, so the cleaned
// values are the ones written. A failing hook aborts the write before the
// statement reaches the database.
//
// # Errors
//
// Connection, migration and write failures are sentinel errors joined with
// the underlying cause (errors.Join), so both errors.Is(err, pg.ErrHookFailed)
// and errors.Is(err, <original>) hold. IsNotFoundError, IsDuplicateKeyError
// and friends classify pgx errors.
package pg
