package repository

import "inkwell/internal/infrastructure/schema"

// ProvisionAll brings every table group up to date. Repositories normally
// provision their own group lazily; this is for the operator-facing repair
// flow and for server startup warmup.
func ProvisionAll(provisioner *schema.Provisioner) error {
	groups := map[string][]interface{}{
		schema.GroupAdmin:     adminModels,
		schema.GroupComments:  commentModels,
		schema.GroupPosts:     postModels,
		schema.GroupReactions: reactionModels,
	}
	for group, models := range groups {
		if err := provisioner.Ensure(group, models...); err != nil {
			return err
		}
	}
	return nil
}
