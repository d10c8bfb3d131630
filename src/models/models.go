package models

// All returns every model registered for auto-migration, parents first so
// the foreign keys resolve.
func All() []interface{} {
	return []interface{}{
		&RoleModel{},
		&UserModel{},
		&ClassificationModel{},
		&AgentModel{},
		&LocationCategoryModel{},
		&MovementCatalogModel{},
		&TransactionStatusModel{},
		&PieceModel{},
		&MovementModel{},
		&PieceContextModel{},
		&LocationHistoryModel{},
		&ConservationStatusModel{},
		&PieceImageModel{},
	}
}
