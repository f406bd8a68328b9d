package ht

/*
Calculates the Reynolds number.

	Args:
		V: velocity, m/s
		D: characteristic length, m
		rho: density, kg/m3
		mu: dynamic viscosity, Pa s

	Returns:
		Reynolds number, -
*/
func Reynolds(V, D, rho, mu float64) float64 {
	return rho * V * D / mu
}

/*
Calculates the Prandtl number.

	Args:
		Cp: heat capacity, J/kg/K
		mu: dynamic viscosity, Pa s
		k: thermal conductivity, W/m/K

	Returns:
		Prandtl number, -
*/
func Prandtl(Cp, mu, k float64) float64 {
	return Cp * mu / k
}
