// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/specsmith/specsmith/ent/activitylog"
	"github.com/specsmith/specsmith/ent/apikey"
	"github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/conversationturn"
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/ent/project"
	"github.com/specsmith/specsmith/ent/projectshare"
	"github.com/specsmith/specsmith/ent/qualitymetric"
	"github.com/specsmith/specsmith/ent/question"
	"github.com/specsmith/specsmith/ent/refreshtoken"
	"github.com/specsmith/specsmith/ent/schema"
	"github.com/specsmith/specsmith/ent/session"
	"github.com/specsmith/specsmith/ent/specification"
	"github.com/specsmith/specsmith/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescName is the schema descriptor for name field.
	apikeyDescName := apikeyFields[2].Descriptor()
	// apikey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	apikey.NameValidator = apikeyDescName.Validators[0].(func(string) error)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[5].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogFields[8].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	conflictFields := schema.Conflict{}.Fields()
	_ = conflictFields
	// conflictDescNewConfidence is the schema descriptor for new_confidence field.
	conflictDescNewConfidence := conflictFields[6].Descriptor()
	// conflict.DefaultNewConfidence holds the default value on creation for the new_confidence field.
	conflict.DefaultNewConfidence = conflictDescNewConfidence.Default.(float64)
	// conflictDescCreatedAt is the schema descriptor for created_at field.
	conflictDescCreatedAt := conflictFields[12].Descriptor()
	// conflict.DefaultCreatedAt holds the default value on creation for the created_at field.
	conflict.DefaultCreatedAt = conflictDescCreatedAt.Default.(func() time.Time)
	conversationturnFields := schema.ConversationTurn{}.Fields()
	_ = conversationturnFields
	// conversationturnDescCreatedAt is the schema descriptor for created_at field.
	conversationturnDescCreatedAt := conversationturnFields[5].Descriptor()
	// conversationturn.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationturn.DefaultCreatedAt = conversationturnDescCreatedAt.Default.(func() time.Time)
	generatedfileFields := schema.GeneratedFile{}.Fields()
	_ = generatedfileFields
	// generatedfileDescLineCount is the schema descriptor for line_count field.
	generatedfileDescLineCount := generatedfileFields[4].Descriptor()
	// generatedfile.DefaultLineCount holds the default value on creation for the line_count field.
	generatedfile.DefaultLineCount = generatedfileDescLineCount.Default.(int)
	// generatedfileDescCreatedAt is the schema descriptor for created_at field.
	generatedfileDescCreatedAt := generatedfileFields[5].Descriptor()
	// generatedfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedfile.DefaultCreatedAt = generatedfileDescCreatedAt.Default.(func() time.Time)
	generatedprojectFields := schema.GeneratedProject{}.Fields()
	_ = generatedprojectFields
	// generatedprojectDescFileCount is the schema descriptor for file_count field.
	generatedprojectDescFileCount := generatedprojectFields[4].Descriptor()
	// generatedproject.DefaultFileCount holds the default value on creation for the file_count field.
	generatedproject.DefaultFileCount = generatedprojectDescFileCount.Default.(int)
	// generatedprojectDescTotalLines is the schema descriptor for total_lines field.
	generatedprojectDescTotalLines := generatedprojectFields[5].Descriptor()
	// generatedproject.DefaultTotalLines holds the default value on creation for the total_lines field.
	generatedproject.DefaultTotalLines = generatedprojectDescTotalLines.Default.(int)
	// generatedprojectDescCreatedAt is the schema descriptor for created_at field.
	generatedprojectDescCreatedAt := generatedprojectFields[10].Descriptor()
	// generatedproject.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedproject.DefaultCreatedAt = generatedprojectDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[2].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescMaturityScore is the schema descriptor for maturity_score field.
	projectDescMaturityScore := projectFields[5].Descriptor()
	// project.DefaultMaturityScore holds the default value on creation for the maturity_score field.
	project.DefaultMaturityScore = projectDescMaturityScore.Default.(float64)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[8].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectshareFields := schema.ProjectShare{}.Fields()
	_ = projectshareFields
	// projectshareDescCreatedAt is the schema descriptor for created_at field.
	projectshareDescCreatedAt := projectshareFields[5].Descriptor()
	// projectshare.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectshare.DefaultCreatedAt = projectshareDescCreatedAt.Default.(func() time.Time)
	qualitymetricFields := schema.QualityMetric{}.Fields()
	_ = qualitymetricFields
	// qualitymetricDescBiasScore is the schema descriptor for bias_score field.
	qualitymetricDescBiasScore := qualitymetricFields[2].Descriptor()
	// qualitymetric.DefaultBiasScore holds the default value on creation for the bias_score field.
	qualitymetric.DefaultBiasScore = qualitymetricDescBiasScore.Default.(float64)
	// qualitymetricDescCoverageScore is the schema descriptor for coverage_score field.
	qualitymetricDescCoverageScore := qualitymetricFields[3].Descriptor()
	// qualitymetric.DefaultCoverageScore holds the default value on creation for the coverage_score field.
	qualitymetric.DefaultCoverageScore = qualitymetricDescCoverageScore.Default.(float64)
	// qualitymetricDescComplexityScore is the schema descriptor for complexity_score field.
	qualitymetricDescComplexityScore := qualitymetricFields[4].Descriptor()
	// qualitymetric.DefaultComplexityScore holds the default value on creation for the complexity_score field.
	qualitymetric.DefaultComplexityScore = qualitymetricDescComplexityScore.Default.(float64)
	// qualitymetricDescCreatedAt is the schema descriptor for created_at field.
	qualitymetricDescCreatedAt := qualitymetricFields[6].Descriptor()
	// qualitymetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	qualitymetric.DefaultCreatedAt = qualitymetricDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescBiasScore is the schema descriptor for bias_score field.
	questionDescBiasScore := questionFields[5].Descriptor()
	// question.DefaultBiasScore holds the default value on creation for the bias_score field.
	question.DefaultBiasScore = questionDescBiasScore.Default.(float64)
	// questionDescRegenerations is the schema descriptor for regenerations field.
	questionDescRegenerations := questionFields[7].Descriptor()
	// question.DefaultRegenerations holds the default value on creation for the regenerations field.
	question.DefaultRegenerations = questionDescRegenerations.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[8].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	refreshtokenFields := schema.RefreshToken{}.Fields()
	_ = refreshtokenFields
	// refreshtokenDescCreatedAt is the schema descriptor for created_at field.
	refreshtokenDescCreatedAt := refreshtokenFields[5].Descriptor()
	// refreshtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	refreshtoken.DefaultCreatedAt = refreshtokenDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[5].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[6].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	specificationFields := schema.Specification{}.Fields()
	_ = specificationFields
	// specificationDescConfidence is the schema descriptor for confidence field.
	specificationDescConfidence := specificationFields[5].Descriptor()
	// specification.DefaultConfidence holds the default value on creation for the confidence field.
	specification.DefaultConfidence = specificationDescConfidence.Default.(float64)
	// specificationDescIsCurrent is the schema descriptor for is_current field.
	specificationDescIsCurrent := specificationFields[7].Descriptor()
	// specification.DefaultIsCurrent holds the default value on creation for the is_current field.
	specification.DefaultIsCurrent = specificationDescIsCurrent.Default.(bool)
	// specificationDescCreatedAt is the schema descriptor for created_at field.
	specificationDescCreatedAt := specificationFields[9].Descriptor()
	// specification.DefaultCreatedAt holds the default value on creation for the created_at field.
	specification.DefaultCreatedAt = specificationDescCreatedAt.Default.(func() time.Time)
	// specificationDescUpdatedAt is the schema descriptor for updated_at field.
	specificationDescUpdatedAt := specificationFields[10].Descriptor()
	// specification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	specification.DefaultUpdatedAt = specificationDescUpdatedAt.Default.(func() time.Time)
	// specification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	specification.UpdateDefaultUpdatedAt = specificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescHandle is the schema descriptor for handle field.
	userDescHandle := userFields[1].Descriptor()
	// user.HandleValidator is a validator for the "handle" field. It is called by the builders before save.
	user.HandleValidator = userDescHandle.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[3].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
