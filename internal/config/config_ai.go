package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetEmbedConfig returns the AI configuration for embedding operations with fallback to global config.
// Embeddings take no prompts, so only the common defaults apply.
func (c *Config) GetEmbedConfig() OperationAIConfig {
	config := c.AI.Embed

	c.applyOperationDefaults(&config)

	return config
}

// GetRewriteConfig returns the AI configuration for rewrite operations with fallback to global config
func (c *Config) GetRewriteConfig() OperationAIConfig {
	config := c.AI.Rewrite

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply rewrite-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.RewriteBullet == "" {
		config.CustomPrompts.SystemPrompts.RewriteBullet = c.AI.CustomPrompts.SystemPrompts.RewriteBullet
	}
	if config.CustomPrompts.UserPrompts.RewriteBullet == "" {
		config.CustomPrompts.UserPrompts.RewriteBullet = c.AI.CustomPrompts.UserPrompts.RewriteBullet
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.RewriteBulletFile == "" {
		config.CustomPrompts.SystemPrompts.RewriteBulletFile = c.AI.CustomPrompts.SystemPrompts.RewriteBulletFile
	}
	if config.CustomPrompts.UserPrompts.RewriteBulletFile == "" {
		config.CustomPrompts.UserPrompts.RewriteBulletFile = c.AI.CustomPrompts.UserPrompts.RewriteBulletFile
	}

	return config
}

// GetGapsConfig returns the AI configuration for gap analysis operations with fallback to global config
func (c *Config) GetGapsConfig() OperationAIConfig {
	config := c.AI.Gaps

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply gaps-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AnalyzeGaps == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeGaps = c.AI.CustomPrompts.SystemPrompts.AnalyzeGaps
	}
	if config.CustomPrompts.UserPrompts.AnalyzeGaps == "" {
		config.CustomPrompts.UserPrompts.AnalyzeGaps = c.AI.CustomPrompts.UserPrompts.AnalyzeGaps
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AnalyzeGapsFile == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeGapsFile = c.AI.CustomPrompts.SystemPrompts.AnalyzeGapsFile
	}
	if config.CustomPrompts.UserPrompts.AnalyzeGapsFile == "" {
		config.CustomPrompts.UserPrompts.AnalyzeGapsFile = c.AI.CustomPrompts.UserPrompts.AnalyzeGapsFile
	}

	return config
}

// GetLoadedRewritePrompts returns a copy of the loaded prompts for rewrite operation
func (c *Config) GetLoadedRewritePrompts() OperationLoadedPrompts {
	return loadedPrompts.Rewrite
}

// GetLoadedGapsPrompts returns a copy of the loaded prompts for gap analysis operation
func (c *Config) GetLoadedGapsPrompts() OperationLoadedPrompts {
	return loadedPrompts.Gaps
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
