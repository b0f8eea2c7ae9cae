// Package schema provides the idempotent additive DDL provisioner the
// repositories call before touching their tables: create-if-missing, then
// add-column-if-missing. Successful provisioning is memoized per process as
// an optimization, but every Ensure call is safe to repeat and safe under
// concurrent first use across instances.
package schema

import (
	"sync"

	"gorm.io/gorm"

	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

// Table groups. Each repository ensures its own group.
const (
	GroupAdmin     = "admin"
	GroupComments  = "comments"
	GroupPosts     = "posts"
	GroupReactions = "reactions"
)

type Provisioner struct {
	db     *gorm.DB
	log    logger.Interface
	done   sync.Map
	// allowBootstrap=false turns Ensure into a schema presence check: a
	// missing table is a deployment error instead of being created.
	allowBootstrap bool
}

func NewProvisioner(db *gorm.DB, allowBootstrap bool, log logger.Interface) *Provisioner {
	return &Provisioner{
		db:             db,
		log:            log,
		allowBootstrap: allowBootstrap,
	}
}

// Ensure brings the tables behind the given models up to date. Duplicate
// table/column errors from a concurrently provisioning instance are treated
// as success: the desired state exists, whoever created it.
func (p *Provisioner) Ensure(group string, models ...interface{}) error {
	if _, ok := p.done.Load(group); ok {
		return nil
	}

	if !p.allowBootstrap {
		for _, model := range models {
			if !p.db.Migrator().HasTable(model) {
				return errors.NewSchemaUnavailableError("table group " + group + " is missing and schema bootstrap is disabled")
			}
		}
		p.done.Store(group, struct{}{})
		return nil
	}

	if err := p.db.AutoMigrate(models...); err != nil {
		if errors.IsDuplicateSchemaError(err) || errors.IsDuplicateError(err) {
			p.log.Warnw("concurrent schema provisioning detected, treating as success",
				"group", group, "error", err)
			p.done.Store(group, struct{}{})
			return nil
		}
		p.log.Errorw("schema provisioning failed", "group", group, "error", err)
		return errors.NewSchemaUnavailableError("failed to provision table group " + group)
	}

	p.done.Store(group, struct{}{})
	return nil
}

// Reset clears the memoization so the next Ensure re-runs provisioning. Used
// by the operator-facing schema repair endpoint.
func (p *Provisioner) Reset() {
	p.done.Range(func(key, _ any) bool {
		p.done.Delete(key)
		return true
	})
}
