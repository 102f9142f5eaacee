package engine

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/dialect"
	"anno-schema/internal/schema"
)

// SeedResult reports the outcome of seeding one entity's table.
type SeedResult struct {
	Entity   string
	Table    string
	Target   int
	Actual   int
	Status   string
	ErrorMsg string
}

// Pump inserts count fake rows per entity, walking entities in dependency
// order so the FK pool always holds parent keys before children need them.
// onProgress fires once per inserted row.
func Pump(db *sql.DB, d dialect.Dialect, entities []*schema.Entity, count int, onProgress func()) ([]SeedResult, error) {
	var results []SeedResult
	fkPool := make(map[string][]interface{})

	for _, e := range entities {
		table := dialect.TableName(e.Name)

		var initialCount int
		db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", d.Quote(table))).Scan(&initialCount)

		tx, err := db.Begin()
		if err != nil {
			return nil, fmt.Errorf("failed to begin transaction for %s: %w", table, err)
		}
		if err := d.BeforeSeed(tx); err != nil {
			fmt.Printf("Warning: BeforeSeed hook failed for %s: %v\n", table, err)
		}

		cols := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			cols = append(cols, f.Name)
		}
		query := d.InsertQuery(table, cols)

		// track values already used on @unique fields within this batch
		usedUnique := make(map[string]map[interface{}]bool)
		for _, f := range e.Fields {
			if f.Unique {
				usedUnique[f.Name] = make(map[interface{}]bool)
			}
		}

		inserted := 0
		attempts := 0
		for inserted < count && attempts < count*10 {
			attempts++
			values, ok := generateRow(e, fkPool, attempts)
			if !ok {
				// unsatisfiable FK constraint; nothing to do for this entity
				break
			}

			skip := false
			for i, f := range e.Fields {
				if f.Unique {
					if usedUnique[f.Name][values[i]] {
						skip = true
						break
					}
				}
			}
			if skip {
				continue
			}
			for i, f := range e.Fields {
				if f.Unique {
					usedUnique[f.Name][values[i]] = true
				}
			}

			if _, err := tx.Exec(query, values...); err == nil {
				inserted++
				if onProgress != nil {
					onProgress()
				}
			} else if attempts <= 3 {
				fmt.Printf("[DEBUG] Table %s attempt %d: %v\n", table, attempts, err)
			}
		}

		if err := d.AfterSeed(tx); err != nil {
			fmt.Printf("Warning: AfterSeed hook failed for %s: %v\n", table, err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit seed transaction for %s: %w", table, err)
		}

		var finalCount int
		db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", d.Quote(table))).Scan(&finalCount)
		actual := finalCount - initialCount

		status := "OK"
		var errMsg string
		if actual < count {
			status = "MISSING DATA"
			errMsg = fmt.Sprintf("only inserted %d out of %d", actual, count)
		}
		results = append(results, SeedResult{
			Entity: e.Name, Table: table,
			Target: count, Actual: actual,
			Status: status, ErrorMsg: errMsg,
		})

		updateFKPool(db, d, e, fkPool)
	}

	return results, nil
}

// generateRow builds one row of values in field order. Reference fields pick
// from the FK pool; everything else goes through GenerateValue.
func generateRow(e *schema.Entity, fkPool map[string][]interface{}, n int) ([]interface{}, bool) {
	values := make([]interface{}, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Ref != nil {
			v, ok := refValue(f, fkPool, n)
			if !ok {
				return nil, false
			}
			values = append(values, v)
			continue
		}
		values = append(values, GenerateValue(f, e.Name, n))
	}
	return values, true
}

// refValue picks a parent key for a reference field. One-to-one (and any
// unique FK) walks the pool sequentially to stay collision-free; many-to-one
// picks at random.
func refValue(f *schema.Field, fkPool map[string][]interface{}, n int) (interface{}, bool) {
	vals := fkPool[f.Ref.TargetEntity]
	if len(vals) > 0 {
		if f.Unique || f.Ref.Cardinality == schema.OneToOne {
			return vals[(n-1)%len(vals)], true
		}
		return vals[seededRand.Intn(len(vals))], true
	}
	// empty pool: circular dependency or the target seeded nothing
	if f.Nullable {
		return nil, true
	}
	// assume the parent table will end up with key 1
	return 1, true
}

// updateFKPool collects the entity's primary key values for child entities.
func updateFKPool(db *sql.DB, d dialect.Dialect, e *schema.Entity, fkPool map[string][]interface{}) {
	pk := e.PrimaryKey()
	if pk == nil {
		return
	}
	table := dialect.TableName(e.Name)
	rows, err := db.Query(fmt.Sprintf("SELECT %s FROM %s", d.Quote(pk.Name), d.Quote(table)))
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var id interface{}
		if err := rows.Scan(&id); err == nil {
			fkPool[e.Name] = append(fkPool[e.Name], id)
		}
	}
}

// VerifySeed re-counts every seeded table and rewrites the result status.
func VerifySeed(db *sql.DB, d dialect.Dialect, results []SeedResult) []SeedResult {
	var verified []SeedResult
	for _, res := range results {
		var currentCount int
		err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", d.Quote(res.Table))).Scan(&currentCount)

		status := "VERIFIED_OK"
		if err != nil {
			status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		} else if currentCount < res.Target {
			status = fmt.Sprintf("PARTIAL: %d/%d", currentCount, res.Target)
		}

		verified = append(verified, SeedResult{
			Entity: res.Entity, Table: res.Table,
			Target: res.Target, Actual: currentCount,
			Status: status, ErrorMsg: res.ErrorMsg,
		})
	}
	return verified
}

// CleanTables removes seeded data in reverse dependency order inside one
// transaction, with the dialect's FK hooks around it.
func CleanTables(db *sql.DB, d dialect.Dialect, entities []*schema.Entity) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := d.BeforeSeed(tx); err != nil {
		fmt.Printf("Warning: failed to relax FK checks: %v. Continuing...\n", err)
	}

	for i := len(entities) - 1; i >= 0; i-- {
		table := dialect.TableName(entities[i].Name)
		if _, err := tx.Exec(d.TruncateQuery(table)); err != nil {
			fmt.Printf("Warning: failed to clean %s: %v (continuing...)\n", table, err)
		}
	}

	if err := d.AfterSeed(tx); err != nil {
		fmt.Printf("Warning: failed to restore FK checks: %v\n", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cleaning transaction: %w", err)
	}
	committed = true
	return nil
}
