package memory

import "github.com/Domenick1991/airport-ops/internal/domain"

func (s *Store) loadSeed() {
	today := domain.CalendarDate(s.clock())

	gates := []domain.GateInput{
		{GateNumber: "A1", Terminal: "A", Status: domain.GateOccupied, CurrentFlightID: domain.Ptr[int64](1)},
		{GateNumber: "A2", Terminal: "A", Status: domain.GateAvailable},
		{GateNumber: "B1", Terminal: "B", Status: domain.GateMaintenance},
	}
	for _, in := range gates {
		g := in.Gate(s.nextGate)
		s.nextGate++
		s.gates[g.ID] = g
	}

	flights := []domain.FlightInput{
		{
			FlightNumber: "AA1234", Airline: "American Airlines", Origin: "New York (JFK)", Destination: "Los Angeles (LAX)",
			DepartureDate: today, DepartureTime: "10:30:00", GateID: domain.Ptr[int64](1), Status: domain.FlightScheduled,
		},
		{
			FlightNumber: "UA2567", Airline: "United Airlines", Origin: "Chicago (ORD)", Destination: "San Francisco (SFO)",
			DepartureDate: today, DepartureTime: "11:45:00", Status: domain.FlightDelayed,
		},
	}
	for _, in := range flights {
		f := in.Flight(s.nextFlight)
		s.nextFlight++
		s.flights[f.ID] = f
	}

	employees := []domain.EmployeeInput{
		{
			FirstName: "John", LastName: "Doe", Email: "john.doe@airport.com", Phone: domain.Ptr("123-456-7890"),
			Role: domain.RolePilot, AssignedFlightID: domain.Ptr[int64](1),
		},
		{
			FirstName: "Jane", LastName: "Smith", Email: "jane.smith@airport.com", Phone: domain.Ptr("123-456-7891"),
			Role: domain.RoleFlightAttendant, AssignedFlightID: domain.Ptr[int64](1),
		},
	}
	for _, in := range employees {
		e := in.Employee(s.nextEmployee)
		s.nextEmployee++
		s.employees[e.ID] = e
	}

	passengers := []domain.PassengerInput{
		{FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com", FlightID: domain.Ptr[int64](1), SeatNumber: domain.Ptr("12A"), CheckedIn: true},
		{FirstName: "Bob", LastName: "Brown", Email: "bob@example.com", FlightID: domain.Ptr[int64](1), SeatNumber: domain.Ptr("12B")},
	}
	for _, in := range passengers {
		p := in.Passenger(s.nextPassenger)
		s.nextPassenger++
		s.passengers[p.ID] = p
	}
}
