package config

// GetBuiltinConfig returns the built-in configuration: quality thresholds,
// bias lists, and optimizer tables that ship with the binary. User
// configuration merges over these (user wins).
func GetBuiltinConfig() *SpecsmithYAMLConfig {
	return &SpecsmithYAMLConfig{
		Defaults: &Defaults{
			LLMProvider: "default",
		},
		Quality: &QualityConfig{
			PhaseThresholds: map[string]PhaseThreshold{
				"analysis": {
					MaturityThreshold:  40,
					CriticalCategories: []string{"goals", "requirements"},
					CategoryThreshold:  60,
				},
				"design": {
					MaturityThreshold:  100,
					CriticalCategories: []string{"security", "testing", "tech_stack"},
					CategoryThreshold:  80,
				},
				"implementation": {
					MaturityThreshold:  100,
					CriticalCategories: []string{"security", "testing", "tech_stack", "deployment"},
					CategoryThreshold:  80,
				},
			},
			CodeGenMinCategories: 7,
			RegenerationCap:      2,
			MergeResolvers:       "creator_or_editor",
			MinQuestionScore:     0.7,
		},
		Bias: &BiasConfig{
			Keywords: []string{
				"should use",
				"should we use",
				"recommend using",
				"you should",
				"the best choice is",
				"obviously",
				"just use",
			},
			LeadingPatterns: []string{
				`(?i)^don'?t you (think|agree)`,
				`(?i)^wouldn'?t it be (better|easier|simpler)`,
				`(?i)^isn'?t it (true|obvious|clear)`,
				`(?i), right\?$`,
				`(?i)^surely`,
			},
			ProductDenylist: []string{
				"React", "Angular", "Vue",
				"PostgreSQL", "MySQL", "MongoDB", "Redis",
				"AWS", "Azure", "GCP",
				"Kubernetes", "Docker",
				"Kafka", "RabbitMQ",
			},
		},
		Optimizer: &OptimizerConfig{
			ImmediateCost: map[string]float64{
				"advance_phase": 200,
				"generate_code": 2000,
				"skip_gaps":     50,
				"address_gaps":  800,
			},
			ReworkCost: map[string]map[string]float64{
				"advance_phase": {
					"discovery": 1500,
					"analysis":  3000,
					"design":    6000,
				},
				"generate_code": {
					"discovery": 4000,
					"analysis":  5000,
					"design":    8000,
				},
				"skip_gaps": {
					"discovery": 2500,
					"analysis":  5000,
					"design":    8000,
				},
			},
			Factors: OptimizerFactors{
				CriticalGap:      0.30,
				MaturityPerPoint: 0.8,
				PendingConflict:  0.20,
			},
			BlockRatio: 3,
		},
		NLU: &NLUConfig{
			HistorySize: 20,
		},
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		Masking: &MaskingConfig{
			// An empty group list selects every pattern group.
			Enabled: true,
		},
	}
}
