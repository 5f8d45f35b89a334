package game

import "github.com/sheikhrachel/go-life/utils"

// CheckRestartConditions determines if the game should restart and why
func CheckRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// shouldInject reports whether a stagnating board should get random life before restarting
func shouldInject(stagnantCount int, config utils.Config) bool {
	return config.InjectionCount > 0 && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}
