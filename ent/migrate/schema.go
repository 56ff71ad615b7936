// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "key_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_users_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_user_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[6]},
			},
		},
	}
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_logs_projects_activity_entries",
				Columns:    []*schema.Column{ActivityLogsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[8], ActivityLogsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						ActivityLogsColumns[7].Name: true,
					},
				},
			},
			{
				Name:    "activitylog_action_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2]},
			},
		},
	}
	// ConflictsColumns holds the columns for the "conflicts" table.
	ConflictsColumns = []*schema.Column{
		{Name: "conflict_id", Type: field.TypeString, Unique: true},
		{Name: "incumbent_spec_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "spec_key", Type: field.TypeString},
		{Name: "new_value", Type: field.TypeString, Size: 2147483647},
		{Name: "new_confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "conflict_type", Type: field.TypeEnum, Enums: []string{"technology", "requirements", "timeline", "resources"}},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resolution", Type: field.TypeEnum, Enums: []string{"pending", "keep_old", "replace", "merge"}, Default: "pending"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "resolver", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// ConflictsTable holds the schema information for the "conflicts" table.
	ConflictsTable = &schema.Table{
		Name:       "conflicts",
		Columns:    ConflictsColumns,
		PrimaryKey: []*schema.Column{ConflictsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conflicts_projects_conflicts",
				Columns:    []*schema.Column{ConflictsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conflict_project_id_resolution",
				Unique:  false,
				Columns: []*schema.Column{ConflictsColumns[13], ConflictsColumns[8]},
			},
			{
				Name:    "conflict_project_id_category_spec_key",
				Unique:  false,
				Columns: []*schema.Column{ConflictsColumns[13], ConflictsColumns[2], ConflictsColumns[3]},
			},
			{
				Name:    "conflict_incumbent_spec_id",
				Unique:  false,
				Columns: []*schema.Column{ConflictsColumns[1]},
			},
		},
	}
	// ConversationTurnsColumns holds the columns for the "conversation_turns" table.
	ConversationTurnsColumns = []*schema.Column{
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ConversationTurnsTable holds the schema information for the "conversation_turns" table.
	ConversationTurnsTable = &schema.Table{
		Name:       "conversation_turns",
		Columns:    ConversationTurnsColumns,
		PrimaryKey: []*schema.Column{ConversationTurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_turns_sessions_turns",
				Columns:    []*schema.Column{ConversationTurnsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationturn_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ConversationTurnsColumns[5], ConversationTurnsColumns[1]},
			},
			{
				Name:    "conversationturn_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[5], ConversationTurnsColumns[4]},
			},
		},
	}
	// GeneratedFilesColumns holds the columns for the "generated_files" table.
	GeneratedFilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "path", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "line_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "generated_project_id", Type: field.TypeString},
	}
	// GeneratedFilesTable holds the schema information for the "generated_files" table.
	GeneratedFilesTable = &schema.Table{
		Name:       "generated_files",
		Columns:    GeneratedFilesColumns,
		PrimaryKey: []*schema.Column{GeneratedFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_files_generated_projects_files",
				Columns:    []*schema.Column{GeneratedFilesColumns[5]},
				RefColumns: []*schema.Column{GeneratedProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedfile_generated_project_id_path",
				Unique:  true,
				Columns: []*schema.Column{GeneratedFilesColumns[5], GeneratedFilesColumns[1]},
			},
		},
	}
	// GeneratedProjectsColumns holds the columns for the "generated_projects" table.
	GeneratedProjectsColumns = []*schema.Column{
		{Name: "generated_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "file_count", Type: field.TypeInt, Default: 0},
		{Name: "total_lines", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "requested_by", Type: field.TypeString},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// GeneratedProjectsTable holds the schema information for the "generated_projects" table.
	GeneratedProjectsTable = &schema.Table{
		Name:       "generated_projects",
		Columns:    GeneratedProjectsColumns,
		PrimaryKey: []*schema.Column{GeneratedProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_projects_projects_generated_projects",
				Columns:    []*schema.Column{GeneratedProjectsColumns[12]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedproject_project_id_version",
				Unique:  true,
				Columns: []*schema.Column{GeneratedProjectsColumns[12], GeneratedProjectsColumns[1]},
			},
			{
				Name:    "generatedproject_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedProjectsColumns[2], GeneratedProjectsColumns[9]},
			},
			{
				Name:    "generatedproject_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedProjectsColumns[2], GeneratedProjectsColumns[8]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "current_phase", Type: field.TypeEnum, Enums: []string{"discovery", "analysis", "design", "implementation"}, Default: "discovery"},
		{Name: "maturity_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ProjectSharesColumns holds the columns for the "project_shares" table.
	ProjectSharesColumns = []*schema.Column{
		{Name: "share_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"viewer", "editor"}},
		{Name: "granted_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProjectSharesTable holds the schema information for the "project_shares" table.
	ProjectSharesTable = &schema.Table{
		Name:       "project_shares",
		Columns:    ProjectSharesColumns,
		PrimaryKey: []*schema.Column{ProjectSharesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_shares_projects_shares",
				Columns:    []*schema.Column{ProjectSharesColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectshare_project_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProjectSharesColumns[5], ProjectSharesColumns[1]},
			},
			{
				Name:    "projectshare_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectSharesColumns[1]},
			},
		},
	}
	// QualityMetricsColumns holds the columns for the "quality_metrics" table.
	QualityMetricsColumns = []*schema.Column{
		{Name: "metric_id", Type: field.TypeString, Unique: true},
		{Name: "bias_score", Type: field.TypeFloat64, Default: 0},
		{Name: "coverage_score", Type: field.TypeFloat64, Default: 0},
		{Name: "complexity_score", Type: field.TypeFloat64, Default: 0},
		{Name: "action", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// QualityMetricsTable holds the schema information for the "quality_metrics" table.
	QualityMetricsTable = &schema.Table{
		Name:       "quality_metrics",
		Columns:    QualityMetricsColumns,
		PrimaryKey: []*schema.Column{QualityMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quality_metrics_projects_quality_metrics",
				Columns:    []*schema.Column{QualityMetricsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "qualitymetric_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QualityMetricsColumns[6], QualityMetricsColumns[5]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "bias_score", Type: field.TypeFloat64, Default: 1},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "regenerations", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_sessions_questions",
				Columns:    []*schema.Column{QuestionsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8], QuestionsColumns[7]},
			},
			{
				Name:    "question_category",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
		},
	}
	// RefreshTokensColumns holds the columns for the "refresh_tokens" table.
	RefreshTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// RefreshTokensTable holds the schema information for the "refresh_tokens" table.
	RefreshTokensTable = &schema.Table{
		Name:       "refresh_tokens",
		Columns:    RefreshTokensColumns,
		PrimaryKey: []*schema.Column{RefreshTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refresh_tokens_users_refresh_tokens",
				Columns:    []*schema.Column{RefreshTokensColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "refreshtoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[5]},
			},
			{
				Name:    "refreshtoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"socratic", "direct_chat"}, Default: "socratic"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "ended"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_projects_sessions",
				Columns:    []*schema.Column{SessionsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7], SessionsColumns[3]},
			},
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status_ended_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[6]},
			},
		},
	}
	// SpecificationsColumns holds the columns for the "specifications" table.
	SpecificationsColumns = []*schema.Column{
		{Name: "spec_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "spec_key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user_input", "extracted", "imported", "inferred"}, Default: "extracted"},
		{Name: "is_current", Type: field.TypeBool, Default: true},
		{Name: "supersedes_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SpecificationsTable holds the schema information for the "specifications" table.
	SpecificationsTable = &schema.Table{
		Name:       "specifications",
		Columns:    SpecificationsColumns,
		PrimaryKey: []*schema.Column{SpecificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "specifications_projects_specifications",
				Columns:    []*schema.Column{SpecificationsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "specification_project_id_category_spec_key",
				Unique:  true,
				Columns: []*schema.Column{SpecificationsColumns[10], SpecificationsColumns[1], SpecificationsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_current",
				},
			},
			{
				Name:    "specification_project_id_is_current",
				Unique:  false,
				Columns: []*schema.Column{SpecificationsColumns[10], SpecificationsColumns[6]},
			},
			{
				Name:    "specification_project_id_category",
				Unique:  false,
				Columns: []*schema.Column{SpecificationsColumns[10], SpecificationsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "handle", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "notification_prefs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_handle",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		ActivityLogsTable,
		ConflictsTable,
		ConversationTurnsTable,
		GeneratedFilesTable,
		GeneratedProjectsTable,
		ProjectsTable,
		ProjectSharesTable,
		QualityMetricsTable,
		QuestionsTable,
		RefreshTokensTable,
		SessionsTable,
		SpecificationsTable,
		UsersTable,
	}
)

func init() {
	APIKeysTable.ForeignKeys[0].RefTable = UsersTable
	ActivityLogsTable.ForeignKeys[0].RefTable = ProjectsTable
	ConflictsTable.ForeignKeys[0].RefTable = ProjectsTable
	ConversationTurnsTable.ForeignKeys[0].RefTable = SessionsTable
	GeneratedFilesTable.ForeignKeys[0].RefTable = GeneratedProjectsTable
	GeneratedProjectsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectSharesTable.ForeignKeys[0].RefTable = ProjectsTable
	QualityMetricsTable.ForeignKeys[0].RefTable = ProjectsTable
	QuestionsTable.ForeignKeys[0].RefTable = SessionsTable
	RefreshTokensTable.ForeignKeys[0].RefTable = UsersTable
	SessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	SpecificationsTable.ForeignKeys[0].RefTable = ProjectsTable
}
