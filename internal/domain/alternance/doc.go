// Package alternance models work-study programmes: the company mentors who
// supervise apprentices and the apprenticeship or professionalisation
// contracts binding a student, a mentor and a host company.
package alternance
